package bytelayout

import (
	"errors"
	"fmt"

	"golang.org/x/sys/cpu"
)

// ByteOrder names the order in which a Word's bytes sit in memory.
type ByteOrder string

const (
	// LittleEndian stores the least significant byte at the lowest address.
	LittleEndian ByteOrder = "little-endian"

	// BigEndian stores the most significant byte at the lowest address.
	BigEndian ByteOrder = "big-endian"

	// MixedEndian is any other arrangement.
	MixedEndian ByteOrder = "mixed-endian"
)

// String returns the order's name.
func (o ByteOrder) String() string {
	return string(o)
}

// ErrOrderMismatch is returned by CheckOrder when the byte order observed in
// memory disagrees with the order the platform declares.
var ErrOrderMismatch = errors.New("byte order mismatch")

// NativeOrder observes the host byte order by viewing a probe Word whose
// lanes hold 1, 2, 3, 4 from least to most significant.
func NativeOrder() ByteOrder {
	probe := [Lanes]Char{1, 2, 3, 4}
	w := Pack(probe)
	return classifyLanes(View(&w), probe)
}

// declaredOrder is the byte order the target architecture declares.
func declaredOrder() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

// CheckOrder verifies that the observed byte order matches the order the
// target architecture declares.
func CheckOrder() error {
	return checkOrder(NativeOrder(), declaredOrder())
}

func checkOrder(observed, declared ByteOrder) error {
	if observed != declared {
		return fmt.Errorf("%w: memory is %s, platform declares %s", ErrOrderMismatch, observed, declared)
	}
	return nil
}
