package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/ostree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	opCount  = 30000
	valRange = 4000
)

// reference is an ordered set from another library that the OSTree is checked against.
type reference interface {
	name() string
	insert(v int)
	remove(v int)
	keys() []int
	// kth smallest key, 1-indexed, by walking the set in order.
	kth(k int) int
}

type godsAVL struct{ t *avltree.Tree }

func (r godsAVL) name() string  { return "gods-avl" }
func (r godsAVL) insert(v int)  { r.t.Put(v, nil) }
func (r godsAVL) remove(v int)  { r.t.Remove(v) }
func (r godsAVL) kth(k int) int { return r.t.Keys()[k-1].(int) }
func (r godsAVL) keys() []int {
	s := make([]int, 0, r.t.Size())
	for _, k := range r.t.Keys() {
		s = append(s, k.(int))
	}
	return s
}

type godsRB struct{ t *redblacktree.Tree }

func (r godsRB) name() string { return "gods-rb" }
func (r godsRB) insert(v int) { r.t.Put(v, nil) }
func (r godsRB) remove(v int) { r.t.Remove(v) }
func (r godsRB) kth(k int) int {
	it := r.t.Iterator()
	for i := 0; i < k; i++ {
		it.Next()
	}
	return it.Key().(int)
}
func (r godsRB) keys() []int {
	s := make([]int, 0, r.t.Size())
	for it := r.t.Iterator(); it.Next(); {
		s = append(s, it.Key().(int))
	}
	return s
}

type bTree struct{ t *btree.BTreeG[int] }

func (r bTree) name() string { return "btree" }
func (r bTree) insert(v int) { r.t.ReplaceOrInsert(v) }
func (r bTree) remove(v int) { r.t.Delete(v) }
func (r bTree) kth(k int) (v int) {
	r.t.Ascend(func(item int) bool {
		k--
		v = item
		return k > 0
	})
	return
}
func (r bTree) keys() []int {
	s := make([]int, 0, r.t.Len())
	r.t.Ascend(func(item int) bool {
		s = append(s, item)
		return true
	})
	return s
}

type llrbTree struct{ t *llrb.LLRB }

func (r llrbTree) name() string { return "llrb" }
func (r llrbTree) insert(v int) { r.t.ReplaceOrInsert(llrb.Int(v)) }
func (r llrbTree) remove(v int) { r.t.Delete(llrb.Int(v)) }
func (r llrbTree) kth(k int) (v int) {
	r.t.AscendGreaterOrEqual(llrb.Int(-1), func(i llrb.Item) bool {
		k--
		v = int(i.(llrb.Int))
		return k > 0
	})
	return
}
func (r llrbTree) keys() []int {
	s := make([]int, 0, r.t.Len())
	r.t.AscendGreaterOrEqual(llrb.Int(-1), func(i llrb.Item) bool {
		s = append(s, int(i.(llrb.Int)))
		return true
	})
	return s
}

func references() []reference {
	return []reference{
		godsAVL{avltree.NewWithIntComparator()},
		godsRB{redblacktree.NewWithIntComparator()},
		bTree{btree.NewOrderedG[int](32)},
		llrbTree{llrb.New()},
	}
}

func keysOf(t *Trees.OSTree[int, uint32]) []int {
	s := make([]int, 0, t.Size())
	f := t.InOrder()
	for v, ok := f(); ok; v, ok = f() {
		s = append(s, v)
	}
	return s
}

func TestDifferential(t *testing.T) {
	for _, ref := range references() {
		t.Run(ref.name(), func(t *testing.T) {
			rg := rand.New(rand.NewSource(1))
			tree := Trees.New[int, uint32]()
			for i := range opCount {
				switch op := rg.Intn(4); {
				case op < 2 || tree.Size() == 0:
					v := rg.Intn(valRange)
					tree.Insert(v)
					ref.insert(v)
				case op == 2:
					k := rg.Intn(int(tree.Size())) + 1
					want := ref.kth(k)
					v, err := tree.DeleteByRank(uint(k))
					require.NoError(t, err)
					require.Equal(t, want, v, "rank %d at op %d", k, i)
					ref.remove(v)
				default:
					v := rg.Intn(valRange)
					tree.Remove(v)
					ref.remove(v)
				}
				if i%1000 == 0 {
					require.Equal(t, ref.keys(), keysOf(tree), "contents at op %d", i)
					require.False(t, tree.Corrupt())
				}
			}
			keys := ref.keys()
			require.Equal(t, keys, keysOf(tree))
			for k := 1; k <= len(keys); k += 37 {
				v, err := tree.SelectByRank(uint(k))
				require.NoError(t, err)
				assert.Equal(t, ref.kth(k), v, "rank %d", k)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	tree := Trees.New[int, uint32]()
	ref := btree.NewOrderedG[int](8)
	for range 5000 {
		v := rg.Intn(valRange * 4)
		_, replaced := ref.ReplaceOrInsert(v)
		assert.Equal(t, !replaced, tree.Insert(v))
		lo, _ := ref.Min()
		hi, _ := ref.Max()
		first, ok := tree.Minimum()
		require.True(t, ok)
		last, _ := tree.Maximum()
		assert.Equal(t, lo, first)
		assert.Equal(t, hi, last)
	}
	assert.Equal(t, uint(ref.Len()), tree.Size())
}

func BenchmarkInsert(b *testing.B) {
	perm := rand.New(rand.NewSource(0)).Perm(1 << 15)
	b.Run("ostree", func(b *testing.B) {
		for range b.N {
			tree := Trees.New[int, uint32]()
			for _, v := range perm {
				tree.Insert(v)
			}
		}
	})
	for _, mk := range []func() reference{
		func() reference { return godsAVL{avltree.NewWithIntComparator()} },
		func() reference { return bTree{btree.NewOrderedG[int](32)} },
		func() reference { return llrbTree{llrb.New()} },
	} {
		b.Run(mk().name(), func(b *testing.B) {
			for range b.N {
				ref := mk()
				for _, v := range perm {
					ref.insert(v)
				}
			}
		})
	}
}
