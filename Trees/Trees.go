package Trees

import "github.com/sirupsen/logrus"

// Log receives the structural events of every tree in this package. Rotations
// are reported at trace level and rejected ranks at debug level; the default
// level (info) keeps it silent.
var Log = logrus.New()

// Tree represents an ordered set of values implemented using nodes that
// also answers order-statistic queries.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// Ranks are 1-indexed: rank 1 is the smallest value currently in the tree.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
// A Tree is not safe for concurrent use; the caller must serialize access.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is
	//already present, in which case the tree is left untouched.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false otherwise.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//SelectByRank returns the k-th smallest element.
	//1<=k<=Size(), otherwise a RankOutOfRangeError is returned.
	SelectByRank(k uint) (T, error)
	//DeleteByRank removes and returns the k-th smallest element.
	//1<=k<=Size(), otherwise a RankOutOfRangeError is returned and the
	//tree is unchanged.
	DeleteByRank(k uint) (T, error)
	//RankOf v in the tree according to in-order. 0 if v isn't in the tree.
	RankOf(v T) uint
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Height of the tree, 0 when it's empty.
	Height() uint
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures: broken ordering,
	//stale size or height, or an unbalanced node.
	Corrupt() bool
}
