package strsort

import (
	"errors"
	"fmt"
)

var (
	// ErrNilReference is returned by SortStrings when the sequence holds an
	// absent string reference.
	ErrNilReference = errors.New("nil string reference")

	// ErrInvalidSize is returned by SortStrings when size does not describe
	// a prefix of the sequence.
	ErrInvalidSize = errors.New("invalid sequence size")
)

// demoNames is the fixed input of the sorter program.
var demoNames = [...]string{"Cory", "Ross", "Gordon", "Deborah"}

// DemoNames returns a fresh copy of the sorter program's input.
func DemoNames() []string {
	names := make([]string, len(demoNames))
	copy(names, demoNames[:])
	return names
}

// SortStrings sorts the first size references of seq in place, ascending
// by Compare. Only the references move; the strings they point to are never
// copied or modified.
//
// The sequence is validated before any element moves: a nil reference in
// seq[:size] yields ErrNilReference and a size outside [0, len(seq)] yields
// ErrInvalidSize, both leaving seq untouched.
func SortStrings(seq []*string, size int) error {
	if size < 0 || size > len(seq) {
		return fmt.Errorf("%w: size %d for sequence of length %d", ErrInvalidSize, size, len(seq))
	}
	for i, ref := range seq[:size] {
		if ref == nil {
			return fmt.Errorf("%w at index %d", ErrNilReference, i)
		}
	}

	insertionSort(size,
		func(i, j int) int { return Compare(*seq[i], *seq[j]) },
		func(i, j int) { seq[i], seq[j] = seq[j], seq[i] },
	)
	return nil
}

// Sort sorts names in place, ascending by Compare.
func Sort(names []string) {
	insertionSort(len(names),
		func(i, j int) int { return Compare(names[i], names[j]) },
		func(i, j int) { names[i], names[j] = names[j], names[i] },
	)
}

// IsSorted reports whether every adjacent pair of names is in Compare order.
func IsSorted(names []string) bool {
	for i := 1; i < len(names); i++ {
		if Compare(names[i-1], names[i]) > 0 {
			return false
		}
	}
	return true
}

// insertionSort grows a sorted prefix one element at a time, walking each
// new element backward by adjacent swaps until it is in order with its
// predecessor or reaches the front.
func insertionSort(n int, cmp func(i, j int) int, swap func(i, j int)) {
	for i := 1; i < n; i++ {
		for m := i; m >= 1 && cmp(m, m-1) < 0; m-- {
			swap(m, m-1)
		}
	}
}
