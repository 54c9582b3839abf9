package main

import (
	"errors"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/ostree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// backend is an ordered integer set under measurement. Only the OSTree answers
// selectRank without walking the set in order.
type backend interface {
	insert(v int)
	// selectRank returns the k-th smallest key, 1-indexed.
	selectRank(k int) (int, error)
	deleteMin() error
	size() int
	// height of the underlying tree, 0 if it isn't exposed.
	height() int
}

var backends = map[string]func() backend{
	"ostree":   func() backend { return osTree{Trees.New[int, uint]()} },
	"gods-avl": func() backend { return godsAVL{avltree.NewWithIntComparator()} },
	"gods-rb":  func() backend { return godsRB{redblacktree.NewWithIntComparator()} },
	"btree":    func() backend { return bTree{btree.NewOrderedG[int](32)} },
	"llrb":     func() backend { return llrbTree{llrb.New()} },
}

var errEmpty = errors.New("delete from empty set")

type osTree struct{ t *Trees.OSTree[int, uint] }

func (b osTree) insert(v int) { b.t.Insert(v) }
func (b osTree) selectRank(k int) (int, error) {
	return b.t.SelectByRank(uint(k))
}
func (b osTree) deleteMin() error {
	_, err := b.t.DeleteByRank(1)
	return err
}
func (b osTree) size() int   { return int(b.t.Size()) }
func (b osTree) height() int { return int(b.t.Height()) }

type godsAVL struct{ t *avltree.Tree }

func (b godsAVL) insert(v int) { b.t.Put(v, struct{}{}) }
func (b godsAVL) selectRank(k int) (int, error) {
	it := b.t.Iterator()
	for i := 0; i < k; i++ {
		if !it.Next() {
			return 0, Trees.RankOutOfRangeError{Rank: uint(k), Size: uint(b.t.Size())}
		}
	}
	return it.Key().(int), nil
}
func (b godsAVL) deleteMin() error {
	n := b.t.Left()
	if n == nil {
		return errEmpty
	}
	b.t.Remove(n.Key)
	return nil
}
func (b godsAVL) size() int   { return b.t.Size() }
func (b godsAVL) height() int { return 0 }

type godsRB struct{ t *redblacktree.Tree }

func (b godsRB) insert(v int) { b.t.Put(v, struct{}{}) }
func (b godsRB) selectRank(k int) (int, error) {
	it := b.t.Iterator()
	for i := 0; i < k; i++ {
		if !it.Next() {
			return 0, Trees.RankOutOfRangeError{Rank: uint(k), Size: uint(b.t.Size())}
		}
	}
	return it.Key().(int), nil
}
func (b godsRB) deleteMin() error {
	n := b.t.Left()
	if n == nil {
		return errEmpty
	}
	b.t.Remove(n.Key)
	return nil
}
func (b godsRB) size() int   { return b.t.Size() }
func (b godsRB) height() int { return 0 }

type bTree struct{ t *btree.BTreeG[int] }

func (b bTree) insert(v int) { b.t.ReplaceOrInsert(v) }
func (b bTree) selectRank(k int) (v int, err error) {
	if k < 1 || k > b.t.Len() {
		return 0, Trees.RankOutOfRangeError{Rank: uint(k), Size: uint(b.t.Len())}
	}
	b.t.Ascend(func(item int) bool {
		k--
		v = item
		return k > 0
	})
	return
}
func (b bTree) deleteMin() error {
	if _, ok := b.t.DeleteMin(); !ok {
		return errEmpty
	}
	return nil
}
func (b bTree) size() int   { return b.t.Len() }
func (b bTree) height() int { return 0 }

type llrbTree struct{ t *llrb.LLRB }

func (b llrbTree) insert(v int) { b.t.ReplaceOrInsert(llrb.Int(v)) }
func (b llrbTree) selectRank(k int) (v int, err error) {
	if k < 1 || k > b.t.Len() {
		return 0, Trees.RankOutOfRangeError{Rank: uint(k), Size: uint(b.t.Len())}
	}
	b.t.AscendGreaterOrEqual(b.t.Min(), func(i llrb.Item) bool {
		k--
		v = int(i.(llrb.Int))
		return k > 0
	})
	return
}
func (b llrbTree) deleteMin() error {
	if b.t.DeleteMin() == nil {
		return errEmpty
	}
	return nil
}
func (b llrbTree) size() int   { return b.t.Len() }
func (b llrbTree) height() int { return 0 }
