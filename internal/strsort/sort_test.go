package strsort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refs returns a reference for each element of names.
func refs(names []string) []*string {
	out := make([]*string, len(names))
	for i := range names {
		out[i] = &names[i]
	}
	return out
}

// deref returns the strings the references in seq point to.
func deref(seq []*string) []string {
	out := make([]string, len(seq))
	for i, ref := range seq {
		out[i] = *ref
	}
	return out
}

// TestSortStrings_Demo checks the sorter program's fixed input end to end.
func TestSortStrings_Demo(t *testing.T) {
	names := DemoNames()
	seq := refs(names)

	require.NoError(t, SortStrings(seq, len(seq)))

	want := []string{"Cory", "Deborah", "Gordon", "Ross"}
	if diff := cmp.Diff(want, deref(seq)); diff != "" {
		t.Errorf("sorted demo mismatch (-want +got):\n%s", diff)
	}
	// Only references move; the backing strings stay where they were.
	assert.Equal(t, []string{"Cory", "Ross", "Gordon", "Deborah"}, names)
}

// TestSortStrings_MovesReferencesOnly checks that the sorted sequence holds
// the same pointers it started with.
func TestSortStrings_MovesReferencesOnly(t *testing.T) {
	names := []string{"b", "c", "a"}
	seq := refs(names)

	require.NoError(t, SortStrings(seq, len(seq)))

	assert.Same(t, &names[2], seq[0])
	assert.Same(t, &names[0], seq[1])
	assert.Same(t, &names[1], seq[2])
}

// TestSortStrings_Degenerate covers empty and single-element sequences.
func TestSortStrings_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{name: "nil sequence", names: nil},
		{name: "empty sequence", names: []string{}},
		{name: "single element", names: []string{"Cory"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := refs(tt.names)
			require.NoError(t, SortStrings(seq, len(seq)))
			assert.ElementsMatch(t, tt.names, deref(seq))
		})
	}
}

// TestSortStrings_PartialSize checks that only the leading size references
// are sorted.
func TestSortStrings_PartialSize(t *testing.T) {
	seq := refs([]string{"c", "b", "a"})

	require.NoError(t, SortStrings(seq, 2))

	assert.Equal(t, []string{"b", "c", "a"}, deref(seq))
}

// TestSortStrings_NilReference checks that an absent reference fails fast
// and leaves the sequence untouched.
func TestSortStrings_NilReference(t *testing.T) {
	names := []string{"Ross", "Cory"}
	seq := []*string{&names[0], &names[1], nil}

	err := SortStrings(seq, len(seq))

	require.ErrorIs(t, err, ErrNilReference)
	assert.Contains(t, err.Error(), "index 2")
	assert.Same(t, &names[0], seq[0])
	assert.Same(t, &names[1], seq[1])
	assert.Nil(t, seq[2])
}

// TestSortStrings_NilOutsideSize checks that references past size are not
// inspected.
func TestSortStrings_NilOutsideSize(t *testing.T) {
	names := []string{"b", "a"}
	seq := []*string{&names[0], &names[1], nil}

	require.NoError(t, SortStrings(seq, 2))
	assert.Equal(t, "a", *seq[0])
}

// TestSortStrings_InvalidSize covers sizes that do not describe a prefix.
func TestSortStrings_InvalidSize(t *testing.T) {
	seq := refs([]string{"b", "a"})

	for _, size := range []int{-1, 3} {
		err := SortStrings(seq, size)
		require.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}
	assert.Equal(t, []string{"b", "a"}, deref(seq))
}

// TestSort_Idempotent checks that re-sorting a sorted sequence changes nothing.
func TestSort_Idempotent(t *testing.T) {
	names := DemoNames()
	Sort(names)
	once := append([]string(nil), names...)

	Sort(names)

	assert.Equal(t, once, names)
}

// TestSort_PrefixQuirk documents how the comparator's prefix equality shows
// up in a sort: "ab" never moves ahead of "abc", so the result is not in
// conventional lexicographic order.
func TestSort_PrefixQuirk(t *testing.T) {
	names := []string{"abc", "ab"}

	Sort(names)

	assert.Equal(t, []string{"abc", "ab"}, names)
	assert.False(t, IsSorted(names))
}

// randomWord returns a string of n ASCII letters. Words of equal length can
// never be proper prefixes of each other.
func randomWord(r *rand.Rand, n int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

// TestSort_Properties checks the permutation and adjacency properties on
// random prefix-free inputs.
func TestSort_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for round := 0; round < 200; round++ {
		n := r.Intn(20)
		width := 1 + r.Intn(4)
		names := make([]string, n)
		for i := range names {
			names[i] = randomWord(r, width)
		}
		input := append([]string(nil), names...)

		Sort(names)

		require.True(t, IsSorted(names), "round %d: %q not sorted", round, names)

		gotSet := append([]string(nil), names...)
		wantSet := append([]string(nil), input...)
		sort.Strings(gotSet)
		sort.Strings(wantSet)
		require.Equal(t, wantSet, gotSet, "round %d: result is not a permutation of %q", round, input)
	}
}

// TestIsSorted covers the adjacency check directly.
func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(nil))
	assert.True(t, IsSorted([]string{"Cory"}))
	assert.True(t, IsSorted([]string{"Cory", "Deborah", "Gordon", "Ross"}))
	assert.False(t, IsSorted(DemoNames()))
}

// TestDemoNames_ReturnsCopy checks that callers cannot mutate the fixed input.
func TestDemoNames_ReturnsCopy(t *testing.T) {
	first := DemoNames()
	first[0] = "changed"

	assert.Equal(t, "Cory", DemoNames()[0])
}
