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

// utf16ToUTF8 is the endian-parameterized kernel behind the UTF-16 to
// UTF-8 conversions. Input units are normalized from the given byte order;
// UTF-8 output has no byte order of its own.
func utf16ToUTF8(dst []byte, src []uint16, srcLen int, flags Flags, little bool) (n, consumed int, e Errno) {
	if src == nil {
		return 0, 0, ErrInvalid
	}
	if hasBOM16(src, srcLen) {
		if flags&ForbidBOM != 0 {
			return 0, 0, ErrBOM
		}
		src = src[1:]
		if srcLen != NullTerminated {
			srcLen--
		}
		consumed = 1
	}

	counting := dst == nil
	var result Errno
	i := 0
	for {
		if srcLen == NullTerminated {
			if i >= len(src) || src[i] == 0 {
				break
			}
		} else if i >= srcLen {
			break
		}

		cp, width, st := decodeUTF16(src, i, srcLen, little)
		if st == decodeTruncated {
			result = ErrInvalid
			break
		}
		if st == decodeMalformed {
			if flags&ErrorOnInvalidCodePoint != 0 {
				result = ErrCodePoint
				break
			}
			cp = ReplacementCodePoint
		}
		w := utf8CodePointLen(cp)
		if !counting {
			if w > len(dst)-1-n {
				result = ErrNoSpace
				break
			}
			encodeUTF8CodePoint(dst[n:], cp)
		}
		n += w
		i += width
	}
	consumed += i

	if !counting && result == 0 {
		if n < len(dst) {
			dst[n] = 0
		} else {
			result = ErrNoSpace
		}
	}
	return n, consumed, result
}

// UTF16NEToUTF8Len computes the UTF-8 length, in bytes and excluding the
// terminator, that UTF16NEToUTF8 would produce. srcLen is a unit count or
// NullTerminated; consumed is in input units and includes a consumed byte
// order mark.
func UTF16NEToUTF8Len(src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF8(nil, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}

// UTF16LEToUTF8Len is UTF16NEToUTF8Len for little-endian input.
func UTF16LEToUTF8Len(src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF8(nil, src, srcLen, flags, true)
	return n, consumed, errOrNil(e)
}

// UTF16BEToUTF8Len is UTF16NEToUTF8Len for big-endian input.
func UTF16BEToUTF8Len(src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF8(nil, src, srcLen, flags, false)
	return n, consumed, errOrNil(e)
}

// UTF16ToUTF8Len is the length pass of UTF16ToUTF8.
func UTF16ToUTF8Len(src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	return utf16Sniff8(nil, src, srcLen, flags)
}

// UTF16NEToUTF8 converts native-endian UTF-16 to UTF-8. len(dst) is the
// capacity in bytes, one of which is reserved for the zero terminator; n
// excludes the terminator. A nil dst is equivalent to UTF16NEToUTF8Len.
func UTF16NEToUTF8(dst []byte, src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF8(dst, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}

// UTF16LEToUTF8 converts little-endian UTF-16 to UTF-8.
func UTF16LEToUTF8(dst []byte, src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF8(dst, src, srcLen, flags, true)
	return n, consumed, errOrNil(e)
}

// UTF16BEToUTF8 converts big-endian UTF-16 to UTF-8.
func UTF16BEToUTF8(dst []byte, src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF8(dst, src, srcLen, flags, false)
	return n, consumed, errOrNil(e)
}

// UTF16ToUTF8 converts UTF-16 to UTF-8, taking the input byte order from a
// leading byte order mark and falling back to native order without one.
// The mark is consumed, counted in consumed, and must not repeat in the
// remainder of the input.
func UTF16ToUTF8(dst []byte, src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	return utf16Sniff8(dst, src, srcLen, flags)
}

func utf16Sniff8(dst []byte, src []uint16, srcLen int, flags Flags) (int, int, error) {
	if hasBOM16(src, srcLen) {
		if flags&ForbidBOM != 0 {
			return 0, 0, ErrBOM
		}
		// A mark that reads as 0xFEFF is stored in the host's byte order.
		little := (src[0] == 0xFEFF) == hostLittle
		rest := src[1:]
		restLen := srcLen
		if srcLen != NullTerminated {
			restLen--
		}
		n, consumed, e := utf16ToUTF8(dst, rest, restLen, flags|ForbidBOM, little)
		return n, consumed + 1, errOrNil(e)
	}
	n, consumed, e := utf16ToUTF8(dst, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}
