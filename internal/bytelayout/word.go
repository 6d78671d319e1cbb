package bytelayout

import (
	"errors"
	"fmt"
	"unsafe"
)

// Word is the packed integer type: a 32-bit signed int.
type Word int32

// Char is the byte-sized unit Word is decomposed into.
type Char = byte

// Lanes is the number of Char lanes in a packed Word.
const Lanes = 4

// laneBits is the width of one lane.
const laneBits = 8

// WordSize and CharSize are the in-memory sizes of Word and Char in bytes.
const (
	WordSize = int(unsafe.Sizeof(Word(0)))
	CharSize = int(unsafe.Sizeof(Char(0)))
)

// Fails to compile if Word cannot hold Lanes bytes.
const _ = uint(WordSize - Lanes*CharSize)

// ErrWordTooNarrow is returned by CheckWidth when Word cannot hold every lane.
var ErrWordTooNarrow = errors.New("word type too narrow")

// CheckWidth verifies at startup that Word holds at least Lanes chars.
func CheckWidth() error {
	return checkWidth(WordSize, CharSize)
}

func checkWidth(wordSize, charSize int) error {
	if wordSize < Lanes*charSize {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrWordTooNarrow, wordSize, Lanes*charSize)
	}
	return nil
}

// Pack places lanes[i] in bits [8i, 8i+8) of the result.
func Pack(lanes [Lanes]Char) Word {
	var w Word
	for i, c := range lanes {
		w += Word(c) << (laneBits * i)
	}
	return w
}

// View returns a byte slice aliasing the storage of *w. Element i is the byte
// at address &w+i, so the order of the slice is the host's native byte order.
// Writes through the slice modify *w. The slice must not outlive w.
func View(w *Word) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(w)), unsafe.Sizeof(*w))
}
