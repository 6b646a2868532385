package vecfmt

import (
	"io"
)

// FormatInt is the specifier callback for the integer-family conversions
// (d, i, o, u, x, X, c). It resolves the request against the dispatch
// tables and renders all lanes, space-separated except for c. If the
// (conversion, modifier) pair is not one this library defines, it returns
// ErrDeclined without writing anything, and the host should fall back to
// its default handling.
func (h *Handle) FormatInt(w io.Writer, req *Request) error {
	class, ok := h.classOf(req.Mods)
	if !ok {
		return ErrDeclined
	}
	e, ok := intEntry(req.Conv, class)
	if !ok {
		return ErrDeclined
	}
	return h.formatLanes(w, req, e)
}

// FormatFloat is the specifier callback for the floating-family
// conversions (f, F, e, E, g, G, a, A). Same contract as FormatInt.
func (h *Handle) FormatFloat(w io.Writer, req *Request) error {
	class, ok := h.classOf(req.Mods)
	if !ok {
		return ErrDeclined
	}
	e, ok := fpEntry(req.Conv, class)
	if !ok {
		return ErrDeclined
	}
	return h.formatLanes(w, req, e)
}

// formatLanes renders every lane of the argument with one shared format
// string. A failed scalar write aborts the remaining lanes; output already
// written stays written.
func (h *Handle) formatLanes(w io.Writer, req *Request, e entry) error {
	format := synthFormat(req, e.suffix)
	n := VectorWidth / e.size
	for i := 0; i < n; i++ {
		if err := h.scalar(w, format, req.Width, req.Prec, e.kind.read(req.Arg, i)); err != nil {
			return err
		}
		// Character vectors print as one contiguous string; everything
		// else is joined with single spaces.
		if i < n-1 && e.suffix != "c" {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
	}
	return nil
}
