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

// utf8ToUTF16 is the native-endian kernel shared by the UTF-8 to UTF-16
// conversions. A nil dst computes lengths only.
func utf8ToUTF16(dst []uint16, src []byte, srcLen int, flags Flags) (n, consumed int, e Errno) {
	if src == nil {
		return 0, 0, ErrInvalid
	}
	if hasBOM8(src, srcLen) {
		if flags&ForbidBOM != 0 {
			return 0, 0, ErrBOM
		}
		src = src[3:]
		if srcLen != NullTerminated {
			srcLen -= 3
		}
		consumed = 3
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

		cp, width, st := decodeUTF8(src, i, srcLen)
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
		w := utf16CodePointLen(cp)
		if !counting {
			// One unit stays reserved for the terminator. A surrogate pair
			// is never split: either both units fit or nothing of this code
			// point is consumed.
			if w > len(dst)-1-n {
				result = ErrNoSpace
				break
			}
			encodeUTF16CodePoint(dst[n:], cp)
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

// UTF8ToUTF16Len computes the UTF-16 length, in code units and excluding
// the terminator, that UTF8ToUTF16NE would produce for src. srcLen is a
// byte count or NullTerminated. consumed reports how many input bytes a
// conversion would process, including a consumed byte order mark and
// excluding any malformed or incomplete tail.
func UTF8ToUTF16Len(src []byte, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf8ToUTF16(nil, src, srcLen, flags)
	return n, consumed, errOrNil(e)
}

// UTF8ToUTF16NE converts UTF-8 to native-endian UTF-16. len(dst) is the
// capacity in units, one of which is reserved for the zero terminator
// written after the converted output; n excludes the terminator. A nil dst
// is equivalent to UTF8ToUTF16Len.
func UTF8ToUTF16NE(dst []uint16, src []byte, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf8ToUTF16(dst, src, srcLen, flags)
	return n, consumed, errOrNil(e)
}

// UTF8ToUTF16LE converts UTF-8 to little-endian UTF-16. The conversion runs
// in native order and the output is byte-swapped in place when the host
// differs.
func UTF8ToUTF16LE(dst []uint16, src []byte, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf8ToUTF16(dst, src, srcLen, flags)
	if e != 0 {
		return n, consumed, e
	}
	if dst != nil && !IsLittleEndian() {
		SwapEndianUTF16(dst, n)
	}
	return n, consumed, nil
}

// UTF8ToUTF16BE converts UTF-8 to big-endian UTF-16.
func UTF8ToUTF16BE(dst []uint16, src []byte, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf8ToUTF16(dst, src, srcLen, flags)
	if e != 0 {
		return n, consumed, e
	}
	if dst != nil && !IsBigEndian() {
		SwapEndianUTF16(dst, n)
	}
	return n, consumed, nil
}
