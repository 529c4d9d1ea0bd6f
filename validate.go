package slides

import "unicode/utf8"

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the source is not valid UTF-8 or appears
// to be binary. Parse itself accepts anything; renderers call this first.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var control int
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	switch {
	case b < 0x09:
		return true
	case b > 0x0D && b < 0x20:
		return true
	case b == 0x7F:
		return true
	default:
		return false
	}
}
