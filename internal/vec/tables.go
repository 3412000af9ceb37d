package vec

import "github.com/vlen-go/vlen/internal/layout"

// Decode tables, indexed by first byte. With w the 64-bit little-endian
// word loaded at offset 1, the value of any form up to 9 bytes total is
//
//	uint64(b0&headData[b0]) | (w&headContMask[b0])<<headShift[b0]
//
// Immediate bytes have no continuation mask, length-prefixed bytes have no
// data bits or shift, and the prefix tiers have both.
var (
	headData     [256]uint8
	headShift    [256]uint8
	headContMask [256]uint64
)

// Encode tables, indexed by canonical size in [1, 9]. The first byte of a
// value v of size n is encMarker[n] | byte(v)&encData[n], and its payload
// is v >> encShift[n], stored little-endian at offset 1.
var (
	encMarker = [10]byte{0, 0, layout.Prefix1, layout.Prefix2, layout.Prefix3,
		layout.Length | 3, layout.Length | 4, layout.Length | 5, layout.Length | 6, layout.Length | 7}
	encData  = [10]byte{0, 0x7F, 0x3F, 0x1F, 0x0F, 0, 0, 0, 0, 0}
	encShift = [10]uint8{0, 7, 6, 5, 4, 0, 0, 0, 0, 0}
)

func init() {
	for b := range headData {
		switch {
		case b < int(layout.Prefix1):
			headData[b] = 0x7F
		case b < int(layout.Prefix2):
			headData[b] = 0x3F
			headShift[b] = 6
		case b < int(layout.Prefix3):
			headData[b] = 0x1F
			headShift[b] = 5
		case b < int(layout.Length):
			headData[b] = 0x0F
			headShift[b] = 4
		}

		if cont := int(layout.TotalLen[b]) - 1; cont >= 8 {
			headContMask[b] = ^uint64(0)
		} else {
			headContMask[b] = 1<<(8*uint(cont)) - 1
		}
	}
}
