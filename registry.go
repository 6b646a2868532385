package vecfmt

import (
	"io"
)

// Registry is the registration surface of a host formatting runtime. The
// host assigns identifiers; it is assumed never to fail registration, so
// none of these methods return errors. See Host for an in-repo
// implementation.
type Registry interface {
	// RegisterModifier makes token a recognized size modifier and returns
	// the bit the host will set in Request.Mods when it parses the token.
	RegisterModifier(token string) uint64

	// RegisterSpecifier wires a formatter callback and an argument probe
	// to one conversion character.
	RegisterSpecifier(conv byte, format FormatFunc, probe ProbeFunc)

	// RegisterArgKind introduces a new argument shape and returns its
	// type id. copy is invoked per call site to pull the raw argument
	// bytes out of the variadic stream.
	RegisterArgKind(copy CopyFunc) int
}

// FormatFunc renders one directive's argument to w, or returns
// ErrDeclined to send the directive back to the host's default handling.
type FormatFunc func(w io.Writer, req *Request) error

// ProbeFunc reports whether a callback wants a request and, if so, how
// the host should fetch its argument.
type ProbeFunc func(req *Request) (ArgSpec, bool)

// CopyFunc copies the raw bytes of one variadic argument into dst.
type CopyFunc func(dst []byte, arg any)

// ArgSpec tells the host how to pull one argument from the call site.
type ArgSpec struct {
	Type int // arg-kind id from RegisterArgKind
	Size int // bytes to reserve for the copy
}

// modifierTokens is the fixed set of recognized size-modifier tokens.
// lv and hv are aliases whose bits fold into the same canonical class as
// vl and vh.
var modifierTokens = []struct {
	token string
	class modClass
}{
	{"vl", modWord},
	{"lv", modWord},
	{"vh", modHalf},
	{"hv", modHalf},
	{"v", modSingle},
	{"vv", modDouble},
}

var intConvs = []byte{'d', 'i', 'o', 'u', 'x', 'X', 'c'}
var fpConvs = []byte{'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A'}

// Handle is an installed vector formatting extension. It holds the
// modifier bits and arg-kind id the host assigned; after Install it is
// read-only and safe for concurrent formatting calls (assuming the
// ScalarFunc and the output sink are).
type Handle struct {
	classBits [numModClasses]uint64
	argKind   int
	scalar    ScalarFunc
}

// Option configures an Install call.
type Option func(*Handle)

// WithScalar replaces the scalar formatting primitive used for every
// lane. The default is DefaultScalar.
func WithScalar(fn ScalarFunc) Option {
	return func(h *Handle) { h.scalar = fn }
}

// Install registers the vector argument kind, the size-modifier tokens,
// and all fifteen conversion characters with the host, and returns the
// handle the host's callbacks are bound to. Call it once per host before
// any formatting is possible; the returned handle is immutable.
func Install(r Registry, opts ...Option) *Handle {
	h := &Handle{scalar: DefaultScalar}
	for _, opt := range opts {
		opt(h)
	}

	h.argKind = r.RegisterArgKind(copyVector)

	for _, m := range modifierTokens {
		h.classBits[m.class] |= r.RegisterModifier(m.token)
	}

	for _, conv := range intConvs {
		r.RegisterSpecifier(conv, h.FormatInt, h.Probe)
	}
	for _, conv := range fpConvs {
		r.RegisterSpecifier(conv, h.FormatFloat, h.Probe)
	}
	return h
}

// Probe is the argument probe shared by every registered conversion. It
// declares interest iff the request carries one of our modifier bits; the
// conversion character is irrelevant because every supported conversion
// consumes the same shape, one vector register of raw bytes.
func (h *Handle) Probe(req *Request) (ArgSpec, bool) {
	if req.Mods&h.allBits() == 0 {
		return ArgSpec{}, false
	}
	return ArgSpec{Type: h.argKind, Size: VectorWidth}, true
}

// classOf resolves a request's modifier bits to a canonical class. Class
// order fixes precedence should more than one bit be set; hosts set
// exactly one per directive.
func (h *Handle) classOf(bits uint64) (modClass, bool) {
	for class := modClass(0); class < numModClasses; class++ {
		if bits&h.classBits[class] != 0 {
			return class, true
		}
	}
	return 0, false
}

func (h *Handle) allBits() uint64 {
	var all uint64
	for _, b := range h.classBits {
		all |= b
	}
	return all
}

// copyVector is the arg-kind copy callback: a plain bytewise copy of one
// vector register.
func copyVector(dst []byte, arg any) {
	if v, ok := arg.(Vector); ok {
		copy(dst, v[:])
	}
}
