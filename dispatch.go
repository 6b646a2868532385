package vecfmt

// modClass is a canonical size-modifier class. The alias tokens ("lv" for
// "vl", "hv" for "vh") fold into the same class when their bits are
// registered, so dispatch never sees an alias.
type modClass int

const (
	modWord   modClass = iota // vl, lv: 4-byte integer lanes
	modHalf                   // vh, hv: 2-byte integer lanes
	modSingle                 // v: 1-byte integer lanes or float32 lanes
	modDouble                 // vv: float64 lanes

	numModClasses
)

// entry describes how one (conversion, class) pair renders a lane.
type entry struct {
	size   int      // element size in bytes
	kind   laneKind // how to pull a lane out of the argument bytes
	suffix string   // size prefix plus conversion char for the scalar format
}

// intEntry resolves an integer-family conversion (d i o u x X c) against a
// canonical modifier class. ok is false when the pair is undefined and the
// request should be declined.
func intEntry(conv byte, class modClass) (entry, bool) {
	// The c conversion is only defined for byte lanes and renders them as
	// a contiguous string.
	if conv == 'c' {
		if class != modSingle {
			return entry{}, false
		}
		return entry{size: 1, kind: laneKindU8, suffix: "c"}, true
	}

	signed := conv == 'd' || conv == 'i'
	switch class {
	case modWord:
		if signed {
			return entry{size: 4, kind: laneKindI32, suffix: string(conv)}, true
		}
		return entry{size: 4, kind: laneKindU32, suffix: string(conv)}, true
	case modHalf:
		if signed {
			return entry{size: 2, kind: laneKindI16, suffix: "h" + string(conv)}, true
		}
		return entry{size: 2, kind: laneKindU16, suffix: "h" + string(conv)}, true
	case modSingle:
		if signed {
			return entry{size: 1, kind: laneKindI8, suffix: "hh" + string(conv)}, true
		}
		return entry{size: 1, kind: laneKindU8, suffix: "hh" + string(conv)}, true
	default:
		return entry{}, false
	}
}

// fpEntry resolves a floating-family conversion against a canonical
// modifier class. F is registered with the host but has no rows here, so
// %vF declines to the host default.
func fpEntry(conv byte, class modClass) (entry, bool) {
	switch conv {
	case 'f', 'e', 'E', 'g', 'G', 'a', 'A':
	default:
		return entry{}, false
	}
	switch class {
	case modSingle:
		return entry{size: 4, kind: laneKindF32, suffix: string(conv)}, true
	case modDouble:
		return entry{size: 8, kind: laneKindF64, suffix: string(conv)}, true
	default:
		return entry{}, false
	}
}
