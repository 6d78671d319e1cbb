// Package strsort implements C-string style comparison and an in-place
// insertion sort over sequences of string references.
//
// Go strings carry their length and are not NUL-terminated. This package
// models the C convention by reading any position past the end of a string
// as the terminator byte 0. An embedded NUL byte therefore also ends the
// string for comparison purposes.
//
// The comparator keeps a known quirk of the routine it models: it reports
// equality as soon as the left operand ends while all bytes so far matched,
// so Compare("ab", "abc") == 0 even though "ab" is a proper prefix of "abc".
// The relation is not symmetric for prefixes (Compare("abc", "ab") > 0),
// which means a sorted result is only guaranteed to satisfy the adjacency
// invariant for inputs in which no element is a proper prefix of another.
package strsort
