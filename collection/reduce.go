package collection

import (
	"iter"
	"slices"

	"github.com/asynckit-go/asynckit/commonerrors"
)

//
// Reduce utilities
//

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// Reduce folds over the slice s using f, starting with accumulator.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReducesSequence(slices.Values(s), accumulator, f)
}

// ReducesSequence folds over a sequence using f, starting with accumulator.
func ReducesSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) T2 {
	result := accumulator
	for e := range s {
		result = f(result, e)
	}
	return result
}

// ReduceSlots folds over the filled slots of s using f, starting with
// accumulator. Holes are skipped and never observed by f.
func ReduceSlots[T1, T2 any](s []Slot[T1], accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReducesSequence(PresentSequence(s), accumulator, f)
}

// ReduceSlotsSeeded folds over the filled slots of s using f, seeding the
// accumulator with the first filled slot's value, which is consumed as the
// seed rather than folded over. It returns commonerrors.ErrInvalid when s has
// no filled slot since there is then neither a seed nor data to fold over.
func ReduceSlotsSeeded[T any](s []Slot[T], f ReduceFunc[T, T]) (result T, err error) {
	seedAt, found := FirstPresent(s)
	if !found {
		err = commonerrors.New(commonerrors.ErrInvalid, "cannot reduce an empty collection with no initial value")
		return
	}
	result = s[seedAt].value
	for i := seedAt + 1; i < len(s); i++ {
		if s[i].present {
			result = f(result, s[i].value)
		}
	}
	return
}
