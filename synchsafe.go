// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

// synchsafeInvalid marks a synchsafe decode that found a set high bit in
// one of the input bytes, i.e. the value was never actually synchsafe.
const synchsafeInvalid = ^uint32(0)

// decodeSynchsafe32 packs the low 7 bits of each of four bytes into a
// 28-bit native integer, big-endian over the 7-bit groups. It returns
// synchsafeInvalid if any byte has its high bit set.
func decodeSynchsafe32(data []byte) uint32 {
	_ = data[3]

	if data[0]&0x80 != 0 || data[1]&0x80 != 0 ||
		data[2]&0x80 != 0 || data[3]&0x80 != 0 {
		return synchsafeInvalid
	}

	return uint32(data[0])<<21 | uint32(data[1])<<14 |
		uint32(data[2])<<7 | uint32(data[3])
}

// encodeSynchsafe32 is the inverse of decodeSynchsafe32. v must fit in 28
// bits; higher bits are discarded.
func encodeSynchsafe32(v uint32) [4]byte {
	return [4]byte{
		byte(v >> 21 & 0x7f),
		byte(v >> 14 & 0x7f),
		byte(v >> 7 & 0x7f),
		byte(v & 0x7f),
	}
}

// decodeSynchsafe40 decodes the 5-byte synchsafe variant (35 encoded
// bits, truncated here to the low 32). No field in a v2.4 tag, extended
// header, or frame header actually uses the 5-byte form; it exists
// alongside decodeSynchsafe32 because the format defines it.
func decodeSynchsafe40(data []byte) uint64 {
	_ = data[4]

	var v uint64
	for _, b := range data[:5] {
		v = v<<7 | uint64(b&0x7f)
	}
	return v & 0xffffffff
}
