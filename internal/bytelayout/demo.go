package bytelayout

// demoLanes are the characters packed by the demonstration, least
// significant lane first.
var demoLanes = [Lanes]Char{'C', 'O', 'R', 'Y'}

// Report is the outcome of one run of the demonstration.
type Report struct {
	// WordSize and CharSize are the in-memory sizes of Word and Char.
	WordSize int
	CharSize int

	// Value is the packed Word read back as a number.
	Value Word

	// Bytes holds the Word's storage at offsets 0 through WordSize-1.
	Bytes []byte

	// Order is the host byte order observed while reading Bytes.
	Order ByteOrder
}

// Text returns Bytes as a string of characters.
func (r Report) Text() string {
	return string(r.Bytes)
}

// Demo packs 'C', 'O', 'R', 'Y' into a Word and reads its storage back
// byte by byte. It fails if Word is too narrow for the four lanes.
func Demo() (Report, error) {
	if err := CheckWidth(); err != nil {
		return Report{}, err
	}

	w := Pack(demoLanes)
	view := View(&w)

	// Copy out of the view; the report outlives w.
	b := make([]byte, len(view))
	copy(b, view)

	return Report{
		WordSize: WordSize,
		CharSize: CharSize,
		Value:    w,
		Bytes:    b,
		Order:    classifyLanes(b, demoLanes),
	}, nil
}

// classifyLanes reports the byte order implied by finding lanes in b.
func classifyLanes(b []byte, lanes [Lanes]Char) ByteOrder {
	little, big := true, true
	for i := 0; i < Lanes; i++ {
		if b[i] != lanes[i] {
			little = false
		}
		if b[Lanes-1-i] != lanes[i] {
			big = false
		}
	}
	switch {
	case little:
		return LittleEndian
	case big:
		return BigEndian
	default:
		return MixedEndian
	}
}
