package vecfmt

import (
	"encoding/binary"
	"math"
)

// laneKind selects the typed decode for one element of a vector.
type laneKind int

const (
	laneKindU32 laneKind = iota
	laneKindI32
	laneKindU16
	laneKindI16
	laneKindU8
	laneKindI8
	laneKindF32
	laneKindF64
)

// read extracts lane i of b as the kind's Go type. Lanes are read in the
// machine's native byte order, matching how a register is laid out in
// memory.
func (k laneKind) read(b []byte, i int) any {
	switch k {
	case laneKindU32:
		return laneU32(b, i)
	case laneKindI32:
		return laneI32(b, i)
	case laneKindU16:
		return laneU16(b, i)
	case laneKindI16:
		return laneI16(b, i)
	case laneKindU8:
		return laneU8(b, i)
	case laneKindI8:
		return laneI8(b, i)
	case laneKindF32:
		return laneF32(b, i)
	case laneKindF64:
		return laneF64(b, i)
	default:
		panic("vecfmt: unknown lane kind")
	}
}

func laneU32(b []byte, i int) uint32 { return binary.NativeEndian.Uint32(b[i*4:]) }
func laneI32(b []byte, i int) int32  { return int32(laneU32(b, i)) }
func laneU16(b []byte, i int) uint16 { return binary.NativeEndian.Uint16(b[i*2:]) }
func laneI16(b []byte, i int) int16  { return int16(laneU16(b, i)) }
func laneU8(b []byte, i int) uint8   { return b[i] }
func laneI8(b []byte, i int) int8    { return int8(b[i]) }

func laneF32(b []byte, i int) float32 { return math.Float32frombits(laneU32(b, i)) }

func laneF64(b []byte, i int) float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(b[i*8:]))
}

// --- Typed constructors ---

// U32x4 builds a vector of four unsigned 32-bit lanes.
func U32x4(v [4]uint32) Vector {
	var out Vector
	for i, x := range v {
		binary.NativeEndian.PutUint32(out[i*4:], x)
	}
	return out
}

// I32x4 builds a vector of four signed 32-bit lanes.
func I32x4(v [4]int32) Vector {
	var u [4]uint32
	for i, x := range v {
		u[i] = uint32(x)
	}
	return U32x4(u)
}

// U16x8 builds a vector of eight unsigned 16-bit lanes.
func U16x8(v [8]uint16) Vector {
	var out Vector
	for i, x := range v {
		binary.NativeEndian.PutUint16(out[i*2:], x)
	}
	return out
}

// I16x8 builds a vector of eight signed 16-bit lanes.
func I16x8(v [8]int16) Vector {
	var u [8]uint16
	for i, x := range v {
		u[i] = uint16(x)
	}
	return U16x8(u)
}

// U8x16 builds a vector of sixteen unsigned byte lanes.
func U8x16(v [16]uint8) Vector { return Vector(v) }

// I8x16 builds a vector of sixteen signed byte lanes.
func I8x16(v [16]int8) Vector {
	var out Vector
	for i, x := range v {
		out[i] = uint8(x)
	}
	return out
}

// F32x4 builds a vector of four float32 lanes.
func F32x4(v [4]float32) Vector {
	var u [4]uint32
	for i, x := range v {
		u[i] = math.Float32bits(x)
	}
	return U32x4(u)
}

// F64x2 builds a vector of two float64 lanes.
func F64x2(v [2]float64) Vector {
	var out Vector
	for i, x := range v {
		binary.NativeEndian.PutUint64(out[i*8:], math.Float64bits(x))
	}
	return out
}
