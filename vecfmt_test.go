package vecfmt_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/vecfmt"
)

func newInstalled(t *testing.T) (*vecfmt.Host, *vecfmt.Handle) {
	t.Helper()
	host := vecfmt.NewHost()
	handle := vecfmt.Install(host)
	return host, handle
}

func TestUnsignedWordVector(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	v := vecfmt.U32x4([4]uint32{4294967295, 0, 39, 2147483647})
	assert.Equal(t, "4294967295 0 39 2147483647", host.Sprintf("%vlu", v))
}

func TestLeftJustifyWinsOverZeroPad(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	v := vecfmt.U32x4([4]uint32{4294967295, 0, 39, 2147483647})
	// With '-' present the '0' flag is suppressed, so both directives
	// render identically with space padding.
	zeroPadded := host.Sprintf("%-08vlu", v)
	spacePadded := host.Sprintf("%-8vlu", v)
	assert.Equal(t, spacePadded, zeroPadded)
	assert.NotContains(t, zeroPadded, "00000039")
	assert.Equal(t, "4294967295 0        39       2147483647", zeroPadded)
}

func TestCharVectorNoSeparators(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	var b [16]uint8
	copy(b[:], "this space is fo")
	assert.Equal(t, "this space is fo", host.Sprintf("%vc", vecfmt.U8x16(b)))
}

func TestSignedHalfwordVectorWithExplicitSign(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	v := vecfmt.I16x8([8]int16{-32768, 32767, 0, -1, 100, -100, 7, -7})
	assert.Equal(t, "-32768 +32767 +0 -1 +100 -100 +7 -7", host.Sprintf("%+hvd", v))
}

func TestSignedHalfwordVectorConsistentWidth(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	v := vecfmt.I16x8([8]int16{-32768, 1, 0, -1, 100, -100, 7, -7})
	out := host.Sprintf("%+7hvd", v)
	// Eight 7-character fields with seven single-space separators.
	require.Len(t, out, 8*7+7)
	for i := 0; i < 7; i++ {
		assert.Equal(t, byte(' '), out[i*8+7])
	}
	assert.Equal(t, " -32768", out[:7])
	assert.Equal(t, "     +1", out[8:15])
}

func TestUnsupportedPairDeclinesWithNoOutput(t *testing.T) {
	t.Parallel()
	host, handle := newInstalled(t)
	v := vecfmt.U32x4([4]uint32{1, 2, 3, 4})

	// c with the word modifier has no dispatch entry.
	bit := host.RegisterModifier("vl") // already registered; same bit
	var buf bytes.Buffer
	err := handle.FormatInt(&buf, &vecfmt.Request{
		Conv: 'c',
		Mods: bit,
		Pad:  ' ',
		Prec: -1,
		Arg:  v[:],
	})
	assert.ErrorIs(t, err, vecfmt.ErrDeclined)
	assert.Zero(t, buf.Len())
}

func TestUnknownModifierBitsDecline(t *testing.T) {
	t.Parallel()
	_, handle := newInstalled(t)
	v := vecfmt.U32x4([4]uint32{1, 2, 3, 4})
	var buf bytes.Buffer
	err := handle.FormatInt(&buf, &vecfmt.Request{
		Conv: 'd',
		Mods: 1 << 60, // never assigned
		Pad:  ' ',
		Prec: -1,
		Arg:  v[:],
	})
	assert.ErrorIs(t, err, vecfmt.ErrDeclined)
	assert.Zero(t, buf.Len())

	buf.Reset()
	err = handle.FormatFloat(&buf, &vecfmt.Request{
		Conv: 'f',
		Mods: 1 << 60,
		Pad:  ' ',
		Prec: -1,
		Arg:  v[:],
	})
	assert.ErrorIs(t, err, vecfmt.ErrDeclined)
	assert.Zero(t, buf.Len())
}

func TestUppercaseFDeclines(t *testing.T) {
	t.Parallel()
	host, handle := newInstalled(t)
	v := vecfmt.F32x4([4]float32{1.5, 2.5, 3.5, 4.5})
	bit := host.RegisterModifier("v")
	var buf bytes.Buffer
	err := handle.FormatFloat(&buf, &vecfmt.Request{
		Conv: 'F',
		Mods: bit,
		Pad:  ' ',
		Prec: -1,
		Arg:  v[:],
	})
	assert.ErrorIs(t, err, vecfmt.ErrDeclined)
	assert.Zero(t, buf.Len())
}

func TestProbe(t *testing.T) {
	t.Parallel()
	host, handle := newInstalled(t)
	bit := host.RegisterModifier("vh")

	spec, ok := handle.Probe(&vecfmt.Request{Conv: 'd', Mods: bit})
	require.True(t, ok)
	assert.Equal(t, vecfmt.VectorWidth, spec.Size)

	_, ok = handle.Probe(&vecfmt.Request{Conv: 'd', Mods: 1 << 60})
	assert.False(t, ok)
	_, ok = handle.Probe(&vecfmt.Request{Conv: 'd'})
	assert.False(t, ok)
}

func TestAliasModifiersIdenticalOutput(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	word := vecfmt.I32x4([4]int32{-2147483648, 0, 39, 2147483647})
	half := vecfmt.I16x8([8]int16{-32768, 32767, 0, -1, 100, -100, 7, -7})

	for _, conv := range []string{"d", "i", "o", "u", "x", "X"} {
		for _, prefix := range []string{"%", "%+", "%-12", "%09", "%#", "%.5"} {
			conv, prefix := conv, prefix
			t.Run(prefix+"vl"+conv, func(t *testing.T) {
				t.Parallel()
				a := host.Sprintf(prefix+"vl"+conv, word)
				b := host.Sprintf(prefix+"lv"+conv, word)
				assert.Equal(t, a, b)
				require.NotEmpty(t, a)
			})
			t.Run(prefix+"vh"+conv, func(t *testing.T) {
				t.Parallel()
				a := host.Sprintf(prefix+"vh"+conv, half)
				b := host.Sprintf(prefix+"hv"+conv, half)
				assert.Equal(t, a, b)
				require.NotEmpty(t, a)
			})
		}
	}
}

// TestVectorMatchesPerLaneScalar pins the core contract: vector output is
// the per-lane scalar output joined by single spaces.
func TestVectorMatchesPerLaneScalar(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)

	signed := []int32{-2147483648, 0, 39, 2147483647}
	unsigned := []uint32{4294967295, 0, 39, 2147483647}
	sv := vecfmt.I32x4([4]int32(signed))
	uv := vecfmt.U32x4([4]uint32(unsigned))

	specs := []string{"", "+", "-", " ", "0", "+0", "-0", "12", "+12", "-12", "012", ".5", "12.5", "-12.5"}
	for _, spec := range specs {
		spec := spec
		t.Run("spec="+spec, func(t *testing.T) {
			t.Parallel()

			var want []string
			for _, lane := range signed {
				want = append(want, fmt.Sprintf("%"+spec+"d", lane))
			}
			assert.Equal(t, strings.Join(want, " "), host.Sprintf("%"+spec+"vld", sv))

			want = want[:0]
			for _, lane := range unsigned {
				want = append(want, fmt.Sprintf("%"+spec+"d", lane))
			}
			assert.Equal(t, strings.Join(want, " "), host.Sprintf("%"+spec+"vlu", uv))
		})
	}
}

func TestFloatMatchesPerLaneScalar(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)

	f32 := []float32{1.5, -2.25, 0, 3.75}
	f64 := []float64{3.14159, -2.71828}
	fv := vecfmt.F32x4([4]float32(f32))
	dv := vecfmt.F64x2([2]float64(f64))

	for _, conv := range []string{"f", "e", "E", "g", "G"} {
		for _, spec := range []string{"", "+", "-14", "14", ".3", "09.2"} {
			conv, spec := conv, spec
			t.Run(conv+"/spec="+spec, func(t *testing.T) {
				t.Parallel()

				var want []string
				for _, lane := range f32 {
					want = append(want, fmt.Sprintf("%"+spec+conv, lane))
				}
				assert.Equal(t, strings.Join(want, " "), host.Sprintf("%"+spec+"v"+conv, fv))

				want = want[:0]
				for _, lane := range f64 {
					want = append(want, fmt.Sprintf("%"+spec+conv, lane))
				}
				assert.Equal(t, strings.Join(want, " "), host.Sprintf("%"+spec+"vv"+conv, dv))
			})
		}
	}
}

func TestHexFloatConversion(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	dv := vecfmt.F64x2([2]float64{1.0, -0.5})
	want := fmt.Sprintf("%x %x", 1.0, -0.5)
	assert.Equal(t, want, host.Sprintf("%vva", dv))
	want = fmt.Sprintf("%X %X", 1.0, -0.5)
	assert.Equal(t, want, host.Sprintf("%vvA", dv))
}

func TestSeparatorCounts(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)

	// Single-digit lanes so every space is a separator.
	half := vecfmt.I16x8([8]int16{0, 1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, 7, strings.Count(host.Sprintf("%vhd", half), " "))

	word := vecfmt.U32x4([4]uint32{1, 2, 3, 4})
	assert.Equal(t, 3, strings.Count(host.Sprintf("%vlu", word), " "))

	dv := vecfmt.F64x2([2]float64{1, 2})
	assert.Equal(t, 1, strings.Count(host.Sprintf("%.0vvf", dv), " "))

	var b [16]uint8
	copy(b[:], "abcdefghijklmnop")
	assert.Equal(t, 0, strings.Count(host.Sprintf("%vc", vecfmt.U8x16(b)), " "))
}

func TestByteVectors(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)

	sv := vecfmt.I8x16([16]int8{-128, 127, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	assert.Equal(t, "-128 127 -1 0 1 2 3 4 5 6 7 8 9 10 11 12", host.Sprintf("%vd", sv))

	uv := vecfmt.U8x16([16]uint8{255, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14})
	assert.Equal(t, "255 0 1 2 3 4 5 6 7 8 9 10 11 12 13 14", host.Sprintf("%vu", uv))
}

func TestHostLiteralsAndFallback(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)

	assert.Equal(t, "plain text", host.Sprintf("plain text"))
	assert.Equal(t, "100%", host.Sprintf("100%%"))
	assert.Equal(t, "42", host.Sprintf("%d", 42))
	assert.Equal(t, "x = -7!", host.Sprintf("x = %i!", -7))

	v := vecfmt.I32x4([4]int32{1, 2, 3, 4})
	assert.Equal(t, "v=[1 2 3 4]", host.Sprintf("v=[%vld]", v))
}

func TestHostMissingArgument(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	assert.Equal(t, "%!d(MISSING)", host.Sprintf("%d"))
}

func TestHostWriteErrorPropagates(t *testing.T) {
	t.Parallel()
	host, _ := newInstalled(t)
	v := vecfmt.U32x4([4]uint32{1, 2, 3, 4})
	n, err := host.Fprintf(&errWriter{}, "%vlu", v)
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestCustomScalar(t *testing.T) {
	t.Parallel()
	host := vecfmt.NewHost()
	vecfmt.Install(host, vecfmt.WithScalar(
		func(w io.Writer, format string, width, prec int, arg any) error {
			_, err := fmt.Fprintf(w, "<%v>", arg)
			return err
		}))
	v := vecfmt.U32x4([4]uint32{1, 2, 3, 4})
	assert.Equal(t, "<1> <2> <3> <4>", host.Sprintf("%vlu", v))
}

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("sink closed")
}
