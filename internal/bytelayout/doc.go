// Package bytelayout demonstrates how a fixed-width integer is laid out in
// memory.
//
// Four characters are packed into the byte lanes of a 32-bit Word by
// shift-and-add, least significant lane first. View then exposes the Word's
// own storage as a byte slice, so reading offsets 0 through 3 walks memory
// in address order. The result depends on the host's byte order: a
// little-endian machine reads the lanes back in construction order, a
// big-endian machine reads them reversed.
//
// The package deliberately avoids encoding/binary for the read-back. A
// portable encoder would pick an order and hide the one the hardware uses.
package bytelayout
