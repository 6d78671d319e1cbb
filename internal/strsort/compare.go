package strsort

// terminator is the byte that ends a C string.
const terminator = 0

// byteAt returns the byte at position i of s, or the terminator when i is
// past the end of s.
func byteAt(s string, i int) byte {
	if i >= len(s) {
		return terminator
	}
	return s[i]
}

// Compare compares a and b as NUL-terminated byte sequences.
//
// It returns a negative value if a sorts before b, a positive value if a
// sorts after b, and 0 if they are equal. Bytes are compared unsigned.
//
// Equality is declared as soon as a reaches its terminator while every byte
// so far matched, regardless of how much of b remains:
//
//	Compare("ab", "abc") == 0
//	Compare("abc", "ab") > 0
func Compare(a, b string) int {
	i := 0
	for byteAt(a, i) == byteAt(b, i) {
		i++
		if byteAt(a, i) == terminator {
			return 0
		}
	}
	return int(byteAt(a, i)) - int(byteAt(b, i))
}
