//
// Copyright (c) 2023 WillAbides
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utf

// IsUTF16BOMLE reports whether the two bytes form a little-endian UTF-16
// byte order mark.
func IsUTF16BOMLE(b0, b1 byte) bool { return b0 == 0xFF && b1 == 0xFE }

// IsUTF16BOMBE reports whether the two bytes form a big-endian UTF-16 byte
// order mark.
func IsUTF16BOMBE(b0, b1 byte) bool { return b0 == 0xFE && b1 == 0xFF }

// IsUTF32BOMLE reports whether the four bytes form a little-endian UTF-32
// byte order mark.
func IsUTF32BOMLE(b0, b1, b2, b3 byte) bool {
	return b0 == 0xFF && b1 == 0xFE && b2 == 0x00 && b3 == 0x00
}

// IsUTF32BOMBE reports whether the four bytes form a big-endian UTF-32 byte
// order mark.
func IsUTF32BOMBE(b0, b1, b2, b3 byte) bool {
	return b0 == 0x00 && b1 == 0x00 && b2 == 0xFE && b3 == 0xFF
}

// HasUTF8BOM reports whether b starts with the UTF-8 byte order mark
// EF BB BF.
func HasUTF8BOM(b []byte) bool {
	return len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF
}

// HasUTF16BOM reports whether b starts with a UTF-16 byte order mark of
// either endianness. Note that the little-endian UTF-32 mark shares its
// first two bytes with the little-endian UTF-16 mark; present the buffer to
// HasUTF32BOM when it holds UTF-32 data.
func HasUTF16BOM(b []byte) bool {
	return len(b) >= 2 && (IsUTF16BOMLE(b[0], b[1]) || IsUTF16BOMBE(b[0], b[1]))
}

// HasUTF32BOM reports whether b starts with a UTF-32 byte order mark of
// either endianness.
func HasUTF32BOM(b []byte) bool {
	return len(b) >= 4 && (IsUTF32BOMLE(b[0], b[1], b[2], b[3]) || IsUTF32BOMBE(b[0], b[1], b[2], b[3]))
}

// bomUnit16 reports whether a UTF-16 input starting with unit u carries a
// byte order mark. A mark stored in the host's byte order reads as 0xFEFF;
// one stored the other way reads byte-swapped.
func bomUnit16(u uint16) bool { return u == 0xFEFF || u == 0xFFFE }

// bomUnit32 is the UTF-32 analogue of bomUnit16.
func bomUnit32(u uint32) bool { return u == 0x0000FEFF || u == 0xFFFE0000 }

// hasBOM16 reports a leading byte order mark in a UTF-16 input under either
// length mode.
func hasBOM16(src []uint16, srcLen int) bool {
	if len(src) == 0 || srcLen == 0 {
		return false
	}
	return bomUnit16(src[0])
}

func hasBOM32(src []uint32, srcLen int) bool {
	if len(src) == 0 || srcLen == 0 {
		return false
	}
	return bomUnit32(src[0])
}

// hasBOM8 reports a leading UTF-8 byte order mark under either length mode.
func hasBOM8(src []byte, srcLen int) bool {
	if srcLen != NullTerminated && srcLen < 3 {
		return false
	}
	return HasUTF8BOM(src)
}
