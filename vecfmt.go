package vecfmt

import (
	"errors"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrDeclined means the request carries no modifier or conversion this
	// library handles. The host should fall back to its default handling of
	// the directive. Nothing has been written when ErrDeclined is returned.
	ErrDeclined = errors.New("declined: not a vector conversion")

	// ErrBadFormat means a scalar formatter was handed a format string it
	// does not understand. It indicates a ScalarFunc/synthesis mismatch,
	// not bad caller input.
	ErrBadFormat = errors.New("malformed scalar format")
)

// VectorWidth is the size of a vector register in bytes. Every supported
// element size divides it exactly, so lane count is always VectorWidth
// over element size.
const VectorWidth = 16

// Vector is one 16-byte vector register value. Its bytes are reinterpreted
// by the conversion's size modifier as 4, 8, or 16 integer lanes, 4 float32
// lanes, or 2 float64 lanes. The value is never mutated by formatting.
type Vector [VectorWidth]byte

// Request is one parsed formatting directive as the host runtime hands it
// to a specifier callback. The host owns the Request and the argument
// bytes for the duration of the call.
type Request struct {
	// Conv is the conversion character (d, u, x, f, c, ...).
	Conv byte

	// Mods is the modifier bit-field. Each recognized size-modifier token
	// ("vl", "vh", "v", ...) was assigned one bit at registration time;
	// the host sets the bit of the token it parsed.
	Mods uint64

	// Flags parsed from the directive.
	Alt      bool // '#' alternate form
	Space    bool // ' ' space before positive numbers
	Left     bool // '-' left justification
	ShowSign bool // '+' explicit sign
	Group    bool // '\'' digit grouping

	// Pad is the pad character, ' ' or '0'.
	Pad byte

	// Width is the field width, 0 if unspecified.
	Width int

	// Prec is the precision, -1 if unspecified.
	Prec int

	// Arg points at the raw argument bytes; len(Arg) >= VectorWidth for
	// any request this library accepts.
	Arg []byte
}
