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

// utf16ToUTF32 converts between like byte orders: input units are
// normalized from the given order and output units are stored back in it.
func utf16ToUTF32(dst []uint32, src []uint16, srcLen int, flags Flags, little bool) (n, consumed int, e Errno) {
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
		if !counting {
			if len(dst)-1-n < 1 {
				result = ErrNoSpace
				break
			}
			dst[n] = toEndian32(cp, little)
		}
		n++
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

// UTF16NEToUTF32Len computes the UTF-32 length, in units and excluding the
// terminator, that UTF16NEToUTF32NE would produce.
func UTF16NEToUTF32Len(src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF32(nil, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}

// UTF16LEToUTF32Len is UTF16NEToUTF32Len for little-endian input.
func UTF16LEToUTF32Len(src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF32(nil, src, srcLen, flags, true)
	return n, consumed, errOrNil(e)
}

// UTF16BEToUTF32Len is UTF16NEToUTF32Len for big-endian input.
func UTF16BEToUTF32Len(src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF32(nil, src, srcLen, flags, false)
	return n, consumed, errOrNil(e)
}

// UTF16ToUTF32Len is the length pass of UTF16ToUTF32.
func UTF16ToUTF32Len(src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	return utf16Sniff32(nil, src, srcLen, flags)
}

// UTF16NEToUTF32NE converts native-endian UTF-16 to native-endian UTF-32.
// A nil dst is equivalent to UTF16NEToUTF32Len.
func UTF16NEToUTF32NE(dst []uint32, src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF32(dst, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}

// UTF16LEToUTF32LE converts little-endian UTF-16 to little-endian UTF-32.
func UTF16LEToUTF32LE(dst []uint32, src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF32(dst, src, srcLen, flags, true)
	return n, consumed, errOrNil(e)
}

// UTF16BEToUTF32BE converts big-endian UTF-16 to big-endian UTF-32.
func UTF16BEToUTF32BE(dst []uint32, src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf16ToUTF32(dst, src, srcLen, flags, false)
	return n, consumed, errOrNil(e)
}

// UTF16ToUTF32 converts UTF-16 to UTF-32, taking the byte order of both
// input and output from a leading byte order mark and falling back to
// native order without one.
func UTF16ToUTF32(dst []uint32, src []uint16, srcLen int, flags Flags) (n, consumed int, err error) {
	return utf16Sniff32(dst, src, srcLen, flags)
}

func utf16Sniff32(dst []uint32, src []uint16, srcLen int, flags Flags) (int, int, error) {
	if hasBOM16(src, srcLen) {
		if flags&ForbidBOM != 0 {
			return 0, 0, ErrBOM
		}
		little := (src[0] == 0xFEFF) == hostLittle
		rest := src[1:]
		restLen := srcLen
		if srcLen != NullTerminated {
			restLen--
		}
		n, consumed, e := utf16ToUTF32(dst, rest, restLen, flags|ForbidBOM, little)
		return n, consumed + 1, errOrNil(e)
	}
	n, consumed, e := utf16ToUTF32(dst, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}
