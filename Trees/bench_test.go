package Trees

import (
	"testing"
)

var (
	bAddN uint32 = 1 << 17
	bQryN uint32 = bAddN / 2
)

var sideEff int

func create(b *testing.B) *OSTree[int, uint32] {
	b.Helper()
	tree := New[int, uint32]()
	for tree.Size() < uint(bAddN) {
		tree.Insert(rg.Int())
	}
	return tree
}

func BenchmarkInsert(b *testing.B) {
	for range b.N {
		tree := New[int, uint32]()
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

func BenchmarkInsertSequential(b *testing.B) {
	for range b.N {
		tree := New[int, uint32]()
		for i := range int(bAddN) {
			tree.Insert(i)
		}
	}
}

func BenchmarkSelectByRank(b *testing.B) {
	b.StopTimer()
	tree := create(b)
	b.StartTimer()
	for range b.N {
		for range bQryN {
			sideEff, _ = tree.SelectByRank(uint(rg.Int31n(int32(bAddN))) + 1)
		}
	}
}

func BenchmarkDeleteByRank(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := create(b)
		b.StartTimer()
		for tree.Size() > 0 {
			sideEff, _ = tree.DeleteByRank(uint(rg.Int63n(int64(tree.Size()))) + 1)
		}
	}
}

func BenchmarkDeleteMin(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := create(b)
		b.StartTimer()
		for tree.Size() > 0 {
			sideEff, _ = tree.DeleteByRank(1)
		}
	}
}
