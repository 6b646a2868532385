package vecfmt

// maxFormatLen bounds a synthesized scalar format string: '%', up to five
// flag characters, the conditional '0', the "*.*" placeholders, and a
// suffix of at most three characters.
const maxFormatLen = 16

// synthFormat builds the scalar format string shared by every lane of one
// request. Width and precision are not baked in; they travel as runtime
// arguments to each scalar call so all lanes render with identical field
// geometry. Flag order is fixed.
func synthFormat(req *Request, suffix string) string {
	buf := make([]byte, 0, maxFormatLen)
	buf = append(buf, '%')
	if req.Alt {
		buf = append(buf, '#')
	}
	if req.Space {
		buf = append(buf, ' ')
	}
	if req.Left {
		buf = append(buf, '-')
	}
	if req.ShowSign {
		buf = append(buf, '+')
	}
	if req.Group {
		buf = append(buf, '\'')
	}
	// Left justification always wins over zero padding.
	if !req.Left && req.Pad == '0' {
		buf = append(buf, '0')
	}
	buf = append(buf, '*', '.', '*')
	buf = append(buf, suffix...)
	return string(buf)
}
