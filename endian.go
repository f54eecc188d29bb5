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

import (
	"encoding/binary"
	"math/bits"
)

var hostLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1

// IsLittleEndian reports whether the host stores multi-byte values least
// significant byte first.
func IsLittleEndian() bool { return hostLittle }

// IsBigEndian reports whether the host stores multi-byte values most
// significant byte first.
func IsBigEndian() bool { return !hostLittle }

// Swap16 reverses the bytes of x.
func Swap16(x uint16) uint16 { return bits.ReverseBytes16(x) }

// Swap32 reverses the bytes of x.
func Swap32(x uint32) uint32 { return bits.ReverseBytes32(x) }

// LEToHost16 converts a value read from little-endian storage to host
// order. Applying the matching conversion twice yields the original value.
func LEToHost16(x uint16) uint16 {
	if hostLittle {
		return x
	}
	return Swap16(x)
}

// BEToHost16 converts a value read from big-endian storage to host order.
func BEToHost16(x uint16) uint16 {
	if hostLittle {
		return Swap16(x)
	}
	return x
}

// HostToLE16 converts a host-order value for little-endian storage.
func HostToLE16(x uint16) uint16 { return LEToHost16(x) }

// HostToBE16 converts a host-order value for big-endian storage.
func HostToBE16(x uint16) uint16 { return BEToHost16(x) }

// LEToHost32 converts a value read from little-endian storage to host order.
func LEToHost32(x uint32) uint32 {
	if hostLittle {
		return x
	}
	return Swap32(x)
}

// BEToHost32 converts a value read from big-endian storage to host order.
func BEToHost32(x uint32) uint32 {
	if hostLittle {
		return Swap32(x)
	}
	return x
}

// HostToLE32 converts a host-order value for little-endian storage.
func HostToLE32(x uint32) uint32 { return LEToHost32(x) }

// HostToBE32 converts a host-order value for big-endian storage.
func HostToBE32(x uint32) uint32 { return BEToHost32(x) }

// SwapEndianUTF16 byte-swaps count elements of s in place. If count is
// NullTerminated, elements are swapped up to the first zero element, which
// is left untouched.
func SwapEndianUTF16(s []uint16, count int) {
	if count == NullTerminated {
		for i := 0; i < len(s) && s[i] != 0; i++ {
			s[i] = Swap16(s[i])
		}
		return
	}
	for i := 0; i < count; i++ {
		s[i] = Swap16(s[i])
	}
}

// SwapEndianUTF32 byte-swaps count elements of s in place. If count is
// NullTerminated, elements are swapped up to the first zero element, which
// is left untouched.
func SwapEndianUTF32(s []uint32, count int) {
	if count == NullTerminated {
		for i := 0; i < len(s) && s[i] != 0; i++ {
			s[i] = Swap32(s[i])
		}
		return
	}
	for i := 0; i < count; i++ {
		s[i] = Swap32(s[i])
	}
}

// fromEndian16 normalizes a stored UTF-16 unit to its host-order value.
func fromEndian16(x uint16, little bool) uint16 {
	if little {
		return LEToHost16(x)
	}
	return BEToHost16(x)
}

// toEndian16 prepares a host-order UTF-16 unit for storage.
func toEndian16(x uint16, little bool) uint16 {
	if little {
		return HostToLE16(x)
	}
	return HostToBE16(x)
}

func fromEndian32(x uint32, little bool) uint32 {
	if little {
		return LEToHost32(x)
	}
	return BEToHost32(x)
}

func toEndian32(x uint32, little bool) uint32 {
	if little {
		return HostToLE32(x)
	}
	return HostToBE32(x)
}
