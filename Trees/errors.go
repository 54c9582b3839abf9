package Trees

import (
	"errors"
	"fmt"
)

// ErrRankOutOfRange is matched by every RankOutOfRangeError through errors.Is.
var ErrRankOutOfRange = errors.New("rank out of range")

// RankOutOfRangeError is returned when a rank outside [1, Size] is used.
// Selecting or deleting from an empty tree reports Size 0.
type RankOutOfRangeError struct {
	Rank, Size uint
}

func (e RankOutOfRangeError) Error() string {
	return fmt.Sprintf("rank %d out of range [1, %d]", e.Rank, e.Size)
}

func (e RankOutOfRangeError) Is(target error) bool {
	return target == ErrRankOutOfRange
}
