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

func utf8ToUTF32(dst []uint32, src []byte, srcLen int, flags Flags) (n, consumed int, e Errno) {
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
		if !counting {
			if len(dst)-1-n < 1 {
				result = ErrNoSpace
				break
			}
			dst[n] = cp
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

// UTF8ToUTF32Len computes the UTF-32 length, in units and excluding the
// terminator, that UTF8ToUTF32NE would produce for src.
func UTF8ToUTF32Len(src []byte, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf8ToUTF32(nil, src, srcLen, flags)
	return n, consumed, errOrNil(e)
}

// UTF8ToUTF32NE converts UTF-8 to native-endian UTF-32. A nil dst is
// equivalent to UTF8ToUTF32Len.
func UTF8ToUTF32NE(dst []uint32, src []byte, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf8ToUTF32(dst, src, srcLen, flags)
	return n, consumed, errOrNil(e)
}

// UTF8ToUTF32LE converts UTF-8 to little-endian UTF-32.
func UTF8ToUTF32LE(dst []uint32, src []byte, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf8ToUTF32(dst, src, srcLen, flags)
	if e != 0 {
		return n, consumed, e
	}
	if dst != nil && !IsLittleEndian() {
		SwapEndianUTF32(dst, n)
	}
	return n, consumed, nil
}

// UTF8ToUTF32BE converts UTF-8 to big-endian UTF-32.
func UTF8ToUTF32BE(dst []uint32, src []byte, srcLen int, flags Flags) (n, consumed int, err error) {
	n, consumed, e := utf8ToUTF32(dst, src, srcLen, flags)
	if e != 0 {
		return n, consumed, e
	}
	if dst != nil && !IsBigEndian() {
		SwapEndianUTF32(dst, n)
	}
	return n, consumed, nil
}
