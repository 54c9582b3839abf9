package Trees

import (
	"cmp"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// OSTree is an AVL tree with no repeated values whose nodes also count the
// size of their subtrees, so the k-th smallest value can be found, and removed,
// in O(D) without visiting unrelated subtrees.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees. S should be a wide upperbound
// for the size of the tree and shouldn't be wider than uint, as Size and the ranks
// are exchanged as uint.
// The height D of the tree is at most 1.44*log2(n+2), where n is the size.
// This struct holds a root pointer and a corresponding nilPtr used as the
// absent subtree described in node.
type OSTree[T cmp.Ordered, S constraints.Unsigned] struct {
	root   *node[T, S] //the root of the tree. It is nilPtr when the tree is empty.
	nilPtr *node[T, S]
}

var _ Tree[int] = (*OSTree[int, uint])(nil)

// New returns an empty OSTree. OSTree shouldn't be created directly using
// struct literal.
func New[T cmp.Ordered, S constraints.Unsigned]() *OSTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	return &OSTree[T, S]{z, z}
}

// FromSlice builds an OSTree by inserting the values of vs one by one, in
// slice order. Repeated values are ignored. vs needn't be sorted.
// Time: O(n log n)
func FromSlice[T cmp.Ordered, S constraints.Unsigned](vs []T) *OSTree[T, S] {
	u := New[T, S]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *OSTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *OSTree[T, S]) Height() uint {
	return uint(u.root.h)
}

// Clear removes every value.
// Time: O(1)
func (u *OSTree[T, S]) Clear() {
	u.root = u.nilPtr
}

func logRotation[T cmp.Ordered, S constraints.Unsigned](op string, n *node[T, S]) {
	if Log.IsLevelEnabled(logrus.TraceLevel) {
		Log.WithFields(logrus.Fields{
			"op": op, "key": n.v, "height": n.h, "size": n.sz,
		}).Trace("rotating")
	}
}

func (u *OSTree[T, S]) rankError(op string, k uint) error {
	err := RankOutOfRangeError{k, u.Size()}
	Log.WithFields(logrus.Fields{
		"op": op, "rank": k, "size": err.Size,
	}).Debug("rejected rank")
	return err
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false and
// no node on the path is written.
func (u *OSTree[T, S]) insert(curPtr **node[T, S], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[T, S]{v, u.nilPtr, u.nilPtr, 1, 1}
		return true
	}
	inserted := false
	if v < cur.v {
		inserted = u.insert(&cur.l, v)
	} else if v > cur.v {
		inserted = u.insert(&cur.r, v)
	} else {
		return false
	}
	if inserted {
		refresh(cur)
		if bf := balanceFactor(cur); bf > 1 {
			// v went to the left; which grandchild took it decides single or double.
			if v < cur.l.v {
				logRotation("right", cur)
				rotateRight(curPtr)
			} else {
				logRotation("left-right", cur)
				rotateLeft(&cur.l)
				rotateRight(curPtr)
			}
		} else if bf < -1 {
			if v > cur.r.v {
				logRotation("left", cur)
				rotateLeft(curPtr)
			} else {
				logRotation("right-left", cur)
				rotateRight(&cur.r)
				rotateLeft(curPtr)
			}
		}
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *OSTree[T, S]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

// SelectByRank [Tree.SelectByRank]
// This function utilizes the sizes of the subtrees as a navigational index:
// the rank of a node within its subtree is the size of its left subtree plus one.
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) SelectByRank(k uint) (T, error) {
	if k == 0 || k > u.Size() {
		return *new(T), u.rankError("select", k)
	}
	cur, t := u.root, S(k)
	for {
		if r := cur.l.sz + 1; t < r {
			cur = cur.l
		} else if t == r {
			return cur.v, nil
		} else {
			t -= r
			cur = cur.r
		}
	}
}

// rebalance the subtree rooting at cur after one of its children lost a node.
// The heavy child's own balance factor decides between a single and a double
// rotation. cur is passed by reference.
func (u *OSTree[T, S]) rebalance(curPtr **node[T, S]) {
	cur := *curPtr
	if bf := balanceFactor(cur); bf > 1 {
		if balanceFactor(cur.l) >= 0 {
			logRotation("right", cur)
			rotateRight(curPtr)
		} else {
			logRotation("left-right", cur)
			rotateLeft(&cur.l)
			rotateRight(curPtr)
		}
	} else if bf < -1 {
		if balanceFactor(cur.r) <= 0 {
			logRotation("left", cur)
			rotateLeft(curPtr)
		} else {
			logRotation("right-left", cur)
			rotateRight(&cur.r)
			rotateLeft(curPtr)
		}
	}
}

// deleteByRank removes the k-th smallest node of the subtree rooting at cur
// recursively and returns its value. cur is passed by reference.
// 1<=k<=cur.sz must hold.
// Time: O(D)
func (u *OSTree[T, S]) deleteByRank(curPtr **node[T, S], k S) (removed T) {
	cur := *curPtr
	if r := cur.l.sz + 1; k < r {
		removed = u.deleteByRank(&cur.l, k)
	} else if k > r {
		removed = u.deleteByRank(&cur.r, k-r)
	} else {
		removed = cur.v
		if cur.l == u.nilPtr {
			*curPtr = cur.r
			return
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
			return
		}
		// the successor is the smallest of the right subtree, so it's rank 1 there.
		cur.v = findMin(cur.r).v
		u.deleteByRank(&cur.r, 1)
	}
	refresh(cur)
	u.rebalance(curPtr)
	return
}

// DeleteByRank [Tree.DeleteByRank]. Recursive.
// The rank is checked against Size before anything is written, so a failed
// call leaves the tree untouched.
// Time: O(D)
func (u *OSTree[T, S]) DeleteByRank(k uint) (T, error) {
	if k == 0 || k > u.Size() {
		return *new(T), u.rankError("delete", k)
	}
	return u.deleteByRank(&u.root, S(k)), nil
}

// Remove [Tree.Remove]. Recursive.
// It locates v with RankOf and removes it with deleteByRank.
// Time: O(D)
func (u *OSTree[T, S]) Remove(v T) bool {
	k := u.RankOf(v)
	if k == 0 {
		return false
	}
	u.deleteByRank(&u.root, S(k))
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) RankOf(v T) uint {
	var ra S = 0
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return uint(ra + cur.l.sz + 1)
		} else {
			ra += cur.l.sz + 1
			cur = cur.r
		}
	}
	return 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Minimum() (T, bool) {
	if u.root == u.nilPtr {
		return *new(T), false
	}
	return findMin(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Maximum() (T, bool) {
	cur := u.root
	if cur == u.nilPtr {
		return *new(T), false
	}
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *OSTree[T, S]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *OSTree[T, S]) InOrder() func() (T, bool) {
	st := make([]*node[T, S], 0, u.root.h)
	for cur := u.root; cur != u.nilPtr; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != u.nilPtr; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// bounded is a node together with the open interval its value must lie in.
// A nil bound is unbounded.
type bounded[T cmp.Ordered, S constraints.Unsigned] struct {
	n      *node[T, S]
	lo, hi *T
}

// Corrupt [Tree.Corrupt]
// Walks the tree level by level and checks ordering, sizes, heights and
// balance factors of every node.
// Time: O(n); Space: O(n)
func (u *OSTree[T, S]) Corrupt() bool {
	if z := u.nilPtr; z.sz != 0 || z.h != 0 || z.l != z || z.r != z {
		return true
	}
	if u.root == u.nilPtr {
		return false
	}
	q := makeNodeQueue[bounded[T, S]](uint(u.root.sz) / 2)
	q.push(bounded[T, S]{u.root, nil, nil})
	for !q.empty() {
		b := q.pop()
		n := b.n
		if (b.lo != nil && n.v <= *b.lo) || (b.hi != nil && n.v >= *b.hi) {
			return true
		}
		if n.h != 1+max(n.l.h, n.r.h) || n.sz != 1+n.l.sz+n.r.sz {
			return true
		}
		if bf := balanceFactor(n); bf > 1 || bf < -1 {
			return true
		}
		if n.l != u.nilPtr {
			q.push(bounded[T, S]{n.l, b.lo, &n.v})
		}
		if n.r != u.nilPtr {
			q.push(bounded[T, S]{n.r, &n.v, b.hi})
		}
	}
	return false
}
