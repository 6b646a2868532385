package vecfmt

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Host is a reference formatting runtime implementing the Registry
// protocol. It exists so the library can be driven end to end the way the
// real thing rides a C printf:
//
//	host := vecfmt.NewHost()
//	vecfmt.Install(host)
//	s := host.Sprintf("%+12vld", vec)
//
// The directive grammar it parses is deliberately small: literal text,
// %% for a percent sign, and %[flags][width][.precision][modifier]conv
// with digit-only width and precision. Directives no installed callback
// claims fall back to the standard library fmt.
type Host struct {
	nextBit   uint64
	modifiers []hostModifier // longest token first
	specs     map[byte]hostSpec
	copiers   []CopyFunc
}

type hostModifier struct {
	token string
	bit   uint64
}

type hostSpec struct {
	format FormatFunc
	probe  ProbeFunc
}

// NewHost returns an empty host with nothing registered.
func NewHost() *Host {
	return &Host{specs: make(map[byte]hostSpec)}
}

// RegisterModifier implements Registry. Each token gets the next free
// bit; registering the same token twice returns the original bit.
func (h *Host) RegisterModifier(token string) uint64 {
	for _, m := range h.modifiers {
		if m.token == token {
			return m.bit
		}
	}
	bit := uint64(1) << h.nextBit
	h.nextBit++
	h.modifiers = append(h.modifiers, hostModifier{token: token, bit: bit})
	sort.SliceStable(h.modifiers, func(i, j int) bool {
		return len(h.modifiers[i].token) > len(h.modifiers[j].token)
	})
	return bit
}

// RegisterSpecifier implements Registry. A later registration for the
// same conversion replaces the earlier one.
func (h *Host) RegisterSpecifier(conv byte, format FormatFunc, probe ProbeFunc) {
	h.specs[conv] = hostSpec{format: format, probe: probe}
}

// RegisterArgKind implements Registry.
func (h *Host) RegisterArgKind(copy CopyFunc) int {
	h.copiers = append(h.copiers, copy)
	return len(h.copiers) - 1
}

// Sprintf formats into a string. Write errors cannot occur against the
// in-memory buffer; callback errors render as %!conv(ERROR=...) the way
// fmt reports bad operands.
func (h *Host) Sprintf(format string, args ...any) string {
	var b strings.Builder
	_, _ = h.Fprintf(&b, format, args...)
	return b.String()
}

// Fprintf formats into w and reports bytes written. The first sink error
// aborts formatting.
func (h *Host) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	cw := &countingWriter{w: w}
	err := h.run(cw, format, args)
	return cw.n, err
}

func (h *Host) run(w io.Writer, format string, args []any) error {
	argIdx := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			j := strings.IndexByte(format[i:], '%')
			if j < 0 {
				j = len(format) - i
			}
			if _, err := io.WriteString(w, format[i:i+j]); err != nil {
				return err
			}
			i += j
			continue
		}
		i++ // consume '%'
		if i < len(format) && format[i] == '%' {
			if _, err := io.WriteString(w, "%"); err != nil {
				return err
			}
			i++
			continue
		}

		req, next, ok := h.parseDirective(format, i)
		if !ok {
			// Trailing or malformed directive: emit it verbatim.
			if _, err := io.WriteString(w, format[i-1:]); err != nil {
				return err
			}
			return nil
		}
		i = next

		if argIdx >= len(args) {
			if _, err := fmt.Fprintf(w, "%%!%c(MISSING)", req.Conv); err != nil {
				return err
			}
			continue
		}
		arg := args[argIdx]
		argIdx++

		if err := h.dispatch(w, &req, arg); err != nil {
			return err
		}
	}
	return nil
}

// parseDirective parses one directive body starting just past the '%'.
// The returned Request has no argument bytes yet.
func (h *Host) parseDirective(format string, i int) (Request, int, bool) {
	req := Request{Pad: ' ', Prec: -1}

flags:
	for i < len(format) {
		switch format[i] {
		case '#':
			req.Alt = true
		case ' ':
			req.Space = true
		case '-':
			req.Left = true
		case '+':
			req.ShowSign = true
		case '\'':
			req.Group = true
		case '0':
			req.Pad = '0'
		default:
			break flags
		}
		i++
	}

	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		req.Width = req.Width*10 + int(format[i]-'0')
		i++
	}
	if i < len(format) && format[i] == '.' {
		i++
		req.Prec = 0
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			req.Prec = req.Prec*10 + int(format[i]-'0')
			i++
		}
	}

	// Longest registered modifier token wins, so vv is tried before v.
	for _, m := range h.modifiers {
		if strings.HasPrefix(format[i:], m.token) {
			req.Mods = m.bit
			i += len(m.token)
			break
		}
	}

	if i >= len(format) {
		return Request{}, 0, false
	}
	req.Conv = format[i]
	return req, i + 1, true
}

// dispatch routes one parsed directive either to a registered callback or
// to the stdlib fallback.
func (h *Host) dispatch(w io.Writer, req *Request, arg any) error {
	if spec, hit := h.specs[req.Conv]; hit {
		if as, want := spec.probe(req); want {
			buf := make([]byte, as.Size)
			h.copiers[as.Type](buf, arg)
			req.Arg = buf
			err := spec.format(w, req)
			if err == nil {
				return nil
			}
			if !errors.Is(err, ErrDeclined) {
				return err
			}
			// Declined after probing: fall through to default handling.
		}
	}
	_, err := fmt.Fprintf(w, fallbackDirective(req), arg)
	return err
}

// fallbackDirective rebuilds a parsed directive as a stdlib fmt directive:
// size modifiers are dropped, i and u become d, a and A become the Go
// hex-float verbs, and the unsupported ' flag is discarded.
func fallbackDirective(req *Request) string {
	var b strings.Builder
	b.WriteByte('%')
	if req.Alt {
		b.WriteByte('#')
	}
	if req.Space {
		b.WriteByte(' ')
	}
	if req.Left {
		b.WriteByte('-')
	}
	if req.ShowSign {
		b.WriteByte('+')
	}
	if !req.Left && req.Pad == '0' {
		b.WriteByte('0')
	}
	if req.Width > 0 {
		b.WriteString(strconv.Itoa(req.Width))
	}
	if req.Prec >= 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(req.Prec))
	}
	verb := req.Conv
	switch verb {
	case 'i', 'u':
		verb = 'd'
	case 'a':
		verb = 'x'
	case 'A':
		verb = 'X'
	}
	b.WriteByte(verb)
	return b.String()
}

type countingWriter struct {
	w io.Writer
	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}
