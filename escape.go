package storekey

// The two reserved low bytes that make variable-length data embeddable inside a larger key
// without breaking lexicographic ordering.
//
// terminator ends a variable-length sequence. escapePrefix marks that the following byte is
// data, not a delimiter. Any raw byte <= escapePrefix that appears inside a variable-length
// sequence, or at a position a composite codec has flagged as ambiguous, must be preceded by
// escapePrefix.
//
// These must be 0x00 and 0x01, in that order: the terminator has to sort below every other
// byte (so that ["a"] < ["a", "b"] matches "a" < "ab" converted to a sequence encoding), and
// the escape has to sort below everything except the terminator for the same reason applied
// one level down, when an element itself starts with an escaped byte.
const (
	terminator   byte = 0x00
	escapePrefix byte = 0x01
)

// safeFalse and safeTrue are the "safe form" boolean encoding: [4.1]. Neither value needs
// escaping, so booleans never force a writer/reader into escape bookkeeping.
const (
	safeFalse byte = 0x02
	safeTrue  byte = 0x03
)

// Reserved low tag values used by two-way and three-way composite discriminants. Starting
// at 0x02 keeps every composite tag outside the terminator/escape range, for the same
// reason booleans use the safe form: a tag byte adjacent to a sequence boundary never needs
// escaping.
const (
	tagNone byte = 0x02
	tagSome byte = 0x03

	tagOk  byte = 0x02
	tagErr byte = 0x03

	tagUnbounded byte = 0x02
	tagInclusive byte = 0x03
	tagExclusive byte = 0x04

	tagNilFirst byte = 0x02
	tagNonNil   byte = 0x03
)

// needsEscape reports whether b must be preceded by escapePrefix to appear unambiguously in
// an escaped position.
func needsEscape(b byte) bool {
	return b <= escapePrefix
}

// escapeAppend copies value into buf, escaping any terminator/escape bytes, and appends a
// final terminator. This is the Append-style counterpart to Writer.WriteVariableBytes, for
// use where a []byte result rather than an io.Writer sink is more convenient; in this
// package only the tests call it, to build fixtures.
func escapeAppend(buf, value []byte) []byte {
	buf = append(buf, make([]byte, 0, len(value)+1)...)[:len(buf)]
	for _, b := range value {
		if needsEscape(b) {
			buf = append(buf, escapePrefix)
		}
		buf = append(buf, b)
	}
	return append(buf, terminator)
}

// unescape reads value up to and including its first unescaped terminator, returning the
// unescaped bytes and the remaining input. It panics if no unescaped terminator is found,
// mirroring the panic-on-malformed-input contract of phiryll-lexy's slice-based Codecs; the
// streaming Reader and BorrowReader below return errors instead, since they see partial
// untrusted input directly from an io.Reader or caller-supplied slice.
func unescape(buf []byte) (value, rest []byte) {
	out := make([]byte, 0, len(buf))
	escaped := false
	for i, b := range buf {
		if !escaped {
			if b == terminator {
				return out, buf[i+1:]
			}
			if b == escapePrefix {
				escaped = true
				continue
			}
		}
		escaped = false
		out = append(out, b)
	}
	panic("storekey: unterminated escaped buffer")
}
