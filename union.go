package storekey

import "encoding/binary"

// DiscriminantWidth is the number of bytes a tagged union's discriminant occupies, chosen by
// variant count per spec section 4.4: wide enough to index every variant while keeping the
// two reserved low tag values free of collision.
type DiscriminantWidth int

const (
	// Discriminant1 is used for unions of at most 253 variants. Variant indices are shifted
	// by +2 so the wire values 0x00 and 0x01 never appear as a discriminant.
	Discriminant1 DiscriminantWidth = 1
	// Discriminant2 is used for unions of at most 65535 variants. Indices are written
	// unshifted, so the first byte of any index below 256 is 0x00.
	Discriminant2 DiscriminantWidth = 2
	// Discriminant4 is used for unions with more than 65535 variants.
	Discriminant4 DiscriminantWidth = 4
)

// discriminantWidthFor returns the DiscriminantWidth that should be used to encode a union
// of variantCount variants, per spec section 4.4.
func discriminantWidthFor(variantCount int) DiscriminantWidth {
	switch {
	case variantCount <= 253:
		return Discriminant1
	case variantCount <= 65535:
		return Discriminant2
	default:
		return Discriminant4
	}
}

// WriteDiscriminant writes index as a union discriminant of the width implied by
// variantCount, shifting by +2 when a single byte is used so 0x00/0x01 never appear as a
// discriminant. Generated Encode methods for tagged unions call this before encoding the
// selected variant's payload.
func WriteDiscriminant(w *Writer, index, variantCount int) error {
	switch discriminantWidthFor(variantCount) {
	case Discriminant1:
		return w.WritePrimitive([]byte{byte(index + 2)})
	case Discriminant2:
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], uint16(index))
		return w.WritePrimitive(buf[:])
	default:
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(index))
		return w.WritePrimitive(buf[:])
	}
}

// ReadDiscriminant reads a union discriminant of the width implied by variantCount and
// returns the zero-based variant index, undoing the +2 shift used for single-byte
// discriminants. Generated Decode methods dispatch on this index; an out-of-range result is
// the caller's signal to return an "unknown variant" error.
func ReadDiscriminant(r *Reader, variantCount int) (int, error) {
	switch discriminantWidthFor(variantCount) {
	case Discriminant1:
		b, err := r.ReadFixed(1)
		if err != nil {
			return 0, err
		}
		if b[0] < 2 {
			return 0, invalidFormat("union: discriminant byte %#x is in the reserved tag range", b[0])
		}
		return int(b[0]) - 2, nil
	case Discriminant2:
		b, err := r.ReadFixed(2)
		if err != nil {
			return 0, err
		}
		return int(binary.BigEndian.Uint16(b)), nil
	default:
		b, err := r.ReadFixed(4)
		if err != nil {
			return 0, err
		}
		return int(binary.BigEndian.Uint32(b)), nil
	}
}

// BorrowReadDiscriminant mirrors ReadDiscriminant for a [BorrowReader].
func BorrowReadDiscriminant(r *BorrowReader, variantCount int) (int, error) {
	switch discriminantWidthFor(variantCount) {
	case Discriminant1:
		b, err := r.ReadFixed(1)
		if err != nil {
			return 0, err
		}
		if b[0] < 2 {
			return 0, invalidFormat("union: discriminant byte %#x is in the reserved tag range", b[0])
		}
		return int(b[0]) - 2, nil
	case Discriminant2:
		b, err := r.ReadFixed(2)
		if err != nil {
			return 0, err
		}
		return int(binary.BigEndian.Uint16(b)), nil
	default:
		b, err := r.ReadFixed(4)
		if err != nil {
			return 0, err
		}
		return int(binary.BigEndian.Uint32(b)), nil
	}
}
