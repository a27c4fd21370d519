package mdp

// byteMatcher tests one byte for membership in a class. The scan primitives
// consume maximal runs of matching bytes.
type byteMatcher interface {
	matches(b byte) bool
}

// byteIs matches a single literal byte.
type byteIs byte

func (m byteIs) matches(b byte) bool { return byte(m) == b }

// byteSet matches any byte in a small fixed set.
type byteSet []byte

func (m byteSet) matches(b byte) bool {
	for _, c := range m {
		if c == b {
			return true
		}
	}
	return false
}

// bytePred matches through an arbitrary predicate.
type bytePred func(byte) bool

func (m bytePred) matches(b byte) bool { return m(b) }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isASCIIPunct(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	}
	return false
}
