// Package vecfmt extends a printf-style formatting runtime so it can
// render 16-byte vector values: a SIMD register reinterpreted as N scalar
// lanes of one type, each lane rendered through the ordinary scalar
// conversion grammar and joined with single spaces.
//
// A size modifier ahead of the conversion character picks the lane shape:
//
//   - vl, lv — four 4-byte integer lanes (integer conversions)
//   - vh, hv — eight 2-byte integer lanes (integer conversions)
//   - v — sixteen byte lanes (integer conversions) or four float32 lanes
//     (floating conversions)
//   - vv — two float64 lanes (floating conversions)
//
// So "%vld" renders four int32 lanes, "%08vhx" renders eight zero-padded
// uint16 lanes, and "%.3vvf" renders two float64 lanes with three digits
// of precision. The c conversion is special: "%vc" renders sixteen byte
// lanes as one contiguous string with no separators.
//
// # Installation
//
// The library plugs into a host runtime through the [Registry] protocol.
// [Install] registers the vector argument kind, the six modifier tokens,
// and the fifteen conversion characters, and returns a [Handle] bound to
// the identifiers the host assigned:
//
//	handle := vecfmt.Install(host)
//
// Installation is explicit rather than a package side effect, so the
// embedding application controls when and against which host it happens.
// The handle is immutable afterward; concurrent formatting calls need no
// locking beyond whatever the output sink requires.
//
// # The reference host
//
// [Host] is a small runtime implementing [Registry] with a printf front
// end, enough to use the library directly:
//
//	host := vecfmt.NewHost()
//	vecfmt.Install(host)
//	host.Sprintf("%vlu", vecfmt.U32x4([4]uint32{1, 2, 3, 4})) // "1 2 3 4"
//
// Directives the vector callbacks decline fall back to the standard
// library fmt.
//
// # Callback contract
//
// A host hands each parsed directive to the registered callback as a
// [Request]. [Handle.FormatInt] and [Handle.FormatFloat] either render
// every lane and return nil, return [ErrDeclined] with nothing written
// when the (conversion, modifier) pair is not theirs, or propagate the
// scalar formatter's error as-is. Width and precision apply identically
// to every lane of one call.
//
// # Flags
//
// The flags '-', '+', ' ', '#', and ''' pass through to each lane's
// scalar format. Zero padding applies only when left justification is
// absent; '-' always wins. Only the default separator (one space, none
// for c) is supported.
//
// # Scalar formatting
//
// vecfmt renders no numbers itself. Each lane goes through a [ScalarFunc];
// the default, [DefaultScalar], maps the synthesized format onto one
// fmt.Fprintf call. Supply [WithScalar] at install time to substitute a
// different primitive (for locale-aware grouping, for example).
package vecfmt
