package vecfmt

import (
	"fmt"
	"io"
	"strings"
)

// ScalarFunc renders one lane value. format is a synthesized printf-style
// format string with "*.*" width/precision placeholders (see DefaultScalar
// for the exact grammar); width and prec are the runtime values for those
// placeholders, with prec < 0 meaning unspecified. Implementations must
// write the rendered lane to w and nothing else.
type ScalarFunc func(w io.Writer, format string, width, prec int, arg any) error

// DefaultScalar renders a lane with the standard library. It accepts the
// printf grammar this package synthesizes:
//
//	% [#][ ][-][+]['][0] *.* [h|hh|l...]conv
//
// and maps it onto one fmt.Fprintf call. The h/l size prefixes are
// dropped (the lane value is already correctly typed), i and u become d,
// and a/A become Go's hex-float verbs x/X. The ' grouping flag is dropped
// because fmt has no digit grouping; install a locale-aware ScalarFunc to
// honor it. A negative width left-justifies (fmt's rule, same as C); a
// negative precision means none.
func DefaultScalar(w io.Writer, format string, width, prec int, arg any) error {
	star := strings.Index(format, "*.*")
	if len(format) < 5 || format[0] != '%' || star < 1 || star+3 >= len(format) {
		return fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	flags := format[1:star]
	suffix := format[star+3:]

	verb := suffix[len(suffix)-1]
	switch verb {
	case 'i', 'u':
		verb = 'd'
	case 'a':
		verb = 'x'
	case 'A':
		verb = 'X'
	}

	goFmt := make([]byte, 0, maxFormatLen)
	goFmt = append(goFmt, '%')
	for i := 0; i < len(flags); i++ {
		if flags[i] != '\'' {
			goFmt = append(goFmt, flags[i])
		}
	}
	goFmt = append(goFmt, '*')
	if prec >= 0 {
		goFmt = append(goFmt, '.', '*')
	}
	goFmt = append(goFmt, verb)

	var err error
	if prec >= 0 {
		_, err = fmt.Fprintf(w, string(goFmt), width, prec, arg)
	} else {
		_, err = fmt.Fprintf(w, string(goFmt), width, arg)
	}
	return err
}
