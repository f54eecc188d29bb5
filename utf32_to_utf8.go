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

func utf32ToUTF8(dst []byte, src []uint32, srcLen int, flags Flags, little bool) (n, consumed int, e Errno) {
	if src == nil {
		return 0, 0, ErrInvalid
	}
	if hasBOM32(src, srcLen) {
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

		cp, st := decodeUTF32(src, i, little)
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
		i++
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

// UTF32NEToUTF8Len computes the UTF-8 length, in bytes and excluding the
// terminator, that UTF32NEToUTF8 would produce. srcLen is a unit count or
// NullTerminated; consumed is in input units and includes a consumed byte
// order mark.
func UTF32NEToUTF8Len(src []uint32, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf32ToUTF8(nil, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}

// UTF32LEToUTF8Len is UTF32NEToUTF8Len for little-endian input.
func UTF32LEToUTF8Len(src []uint32, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf32ToUTF8(nil, src, srcLen, flags, true)
	return n, consumed, errOrNil(e)
}

// UTF32BEToUTF8Len is UTF32NEToUTF8Len for big-endian input.
func UTF32BEToUTF8Len(src []uint32, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf32ToUTF8(nil, src, srcLen, flags, false)
	return n, consumed, errOrNil(e)
}

// UTF32ToUTF8Len is the length pass of UTF32ToUTF8.
func UTF32ToUTF8Len(src []uint32, srcLen int, flags Flags) (n, consumed int, err error) {
	return utf32Sniff8(nil, src, srcLen, flags)
}

// UTF32NEToUTF8 converts native-endian UTF-32 to UTF-8. A nil dst is
// equivalent to UTF32NEToUTF8Len.
func UTF32NEToUTF8(dst []byte, src []uint32, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf32ToUTF8(dst, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}

// UTF32LEToUTF8 converts little-endian UTF-32 to UTF-8.
func UTF32LEToUTF8(dst []byte, src []uint32, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf32ToUTF8(dst, src, srcLen, flags, true)
	return n, consumed, errOrNil(e)
}

// UTF32BEToUTF8 converts big-endian UTF-32 to UTF-8.
func UTF32BEToUTF8(dst []byte, src []uint32, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf32ToUTF8(dst, src, srcLen, flags, false)
	return n, consumed, errOrNil(e)
}

// UTF32ToUTF8 converts UTF-32 to UTF-8, taking the input byte order from a
// leading byte order mark and falling back to native order without one.
func UTF32ToUTF8(dst []byte, src []uint32, srcLen int, flags Flags) (n, consumed int, err error) {
	return utf32Sniff8(dst, src, srcLen, flags)
}

func utf32Sniff8(dst []byte, src []uint32, srcLen int, flags Flags) (int, int, error) {
	if hasBOM32(src, srcLen) {
		if flags&ForbidBOM != 0 {
			return 0, 0, ErrBOM
		}
		little := (src[0] == 0x0000FEFF) == hostLittle
		rest := src[1:]
		restLen := srcLen
		if srcLen != NullTerminated {
			restLen--
		}
		n, consumed, e := utf32ToUTF8(dst, rest, restLen, flags|ForbidBOM, little)
		return n, consumed + 1, errOrNil(e)
	}
	n, consumed, e := utf32ToUTF8(dst, src, srcLen, flags, hostLittle)
	return n, consumed, errOrNil(e)
}
