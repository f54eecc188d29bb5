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

// UTF32IsWhitespace reports whether cp is a Unicode whitespace code point:
// U+0009..U+000D, U+0020, U+0085, U+00A0, U+1680, U+2000..U+200A, U+2028,
// U+2029, U+202F, U+205F or U+3000.
func UTF32IsWhitespace(cp uint32) bool {
	if cp >= 0x09 && cp <= 0x0D {
		return true
	}
	if cp >= 0x2000 && cp <= 0x200A {
		return true
	}
	switch cp {
	case 0x0020, 0x0085, 0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000:
		return true
	}
	return false
}

// UTF32IsNewline reports whether cp terminates a line: U+000A..U+000D,
// U+0085, U+2028 or U+2029.
func UTF32IsNewline(cp uint32) bool {
	if cp >= 0x0A && cp <= 0x0D {
		return true
	}
	return cp == 0x85 || cp == 0x2028 || cp == 0x2029
}

// nextUTF8 steps the utility scanners one code point forward with the
// replace policy applied. ok is false at the end of input and at a
// truncated tail.
func nextUTF8(b []byte, i, n int) (cp uint32, width int, ok bool) {
	if n == NullTerminated {
		if i >= len(b) || b[i] == 0 {
			return 0, 0, false
		}
	} else if i >= n {
		return 0, 0, false
	}
	cp, width, st := decodeUTF8(b, i, n)
	switch st {
	case decodeTruncated:
		return 0, 0, false
	case decodeMalformed:
		cp = ReplacementCodePoint
	}
	return cp, width, true
}

// IsNullOrWhitespaceUTF32 reports whether s holds nothing but whitespace up
// to n units, a zero unit or the end of the slice.
func IsNullOrWhitespaceUTF32(s []uint32, n int) bool {
	for i := 0; ; i++ {
		if i >= len(s) || (n != NullTerminated && i >= n) || s[i] == 0 {
			return true
		}
		if !UTF32IsWhitespace(s[i]) {
			return false
		}
	}
}

// IsNullOrWhitespaceUTF8 reports whether b holds nothing but whitespace up
// to n bytes, a zero byte or the end of the slice.
func IsNullOrWhitespaceUTF8(b []byte, n int) bool {
	if n != NullTerminated && n > len(b) {
		n = len(b)
	}
	i := 0
	for {
		cp, width, ok := nextUTF8(b, i, n)
		if !ok || cp == 0 {
			return true
		}
		if !UTF32IsWhitespace(cp) {
			return false
		}
		i += width
	}
}

// UTF8LTrimOffset returns the byte offset of the first code point in b that
// is not whitespace, or the end of the input when there is none. n is a
// byte count or NullTerminated.
func UTF8LTrimOffset(b []byte, n int) int {
	i := 0
	for {
		cp, width, ok := nextUTF8(b, i, n)
		if !ok || !UTF32IsWhitespace(cp) {
			return i
		}
		i += width
	}
}

// UTF8RTrimOffset returns the byte offset just past the last code point in
// b that is not whitespace, or 0 when the input is all whitespace.
func UTF8RTrimOffset(b []byte, n int) int {
	i, last := 0, 0
	for {
		cp, width, ok := nextUTF8(b, i, n)
		if !ok {
			return last
		}
		i += width
		if !UTF32IsWhitespace(cp) {
			last = i
		}
	}
}

// UTF8NextLine returns the byte offset at which the next line begins along
// with the byte length of the current line, terminators excluded. CR LF
// counts as a single two-byte terminator; a lone CR, LF, NEL, LS or PS
// terminates a line by itself. At the last line next equals the end of the
// input.
func UTF8NextLine(b []byte, n int) (next, lineLen int) {
	i := 0
	for {
		cp, width, ok := nextUTF8(b, i, n)
		if !ok {
			return i, lineLen
		}
		i += width
		if UTF32IsNewline(cp) {
			if cp == '\r' {
				inBounds := i < len(b) && (n == NullTerminated || i < n)
				if inBounds && b[i] == '\n' {
					i++
				}
			}
			return i, lineLen
		}
		lineLen += width
	}
}
