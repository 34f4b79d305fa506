// Copyright 2026 The Vistrutah Authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package aes

// softKernel implements the round primitives with S-box lookups and GF(2^8)
// multiplies. It carries its own tables so that it stands alone without the
// vector emulation layer.
type softKernel struct{}

func (softKernel) Name() string { return "soft" }

var sbox = [256]uint8{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

var invSbox = [256]uint8{
	0x52, 0x09, 0x6a, 0xd5, 0x30, 0x36, 0xa5, 0x38, 0xbf, 0x40, 0xa3, 0x9e, 0x81, 0xf3, 0xd7, 0xfb,
	0x7c, 0xe3, 0x39, 0x82, 0x9b, 0x2f, 0xff, 0x87, 0x34, 0x8e, 0x43, 0x44, 0xc4, 0xde, 0xe9, 0xcb,
	0x54, 0x7b, 0x94, 0x32, 0xa6, 0xc2, 0x23, 0x3d, 0xee, 0x4c, 0x95, 0x0b, 0x42, 0xfa, 0xc3, 0x4e,
	0x08, 0x2e, 0xa1, 0x66, 0x28, 0xd9, 0x24, 0xb2, 0x76, 0x5b, 0xa2, 0x49, 0x6d, 0x8b, 0xd1, 0x25,
	0x72, 0xf8, 0xf6, 0x64, 0x86, 0x68, 0x98, 0x16, 0xd4, 0xa4, 0x5c, 0xcc, 0x5d, 0x65, 0xb6, 0x92,
	0x6c, 0x70, 0x48, 0x50, 0xfd, 0xed, 0xb9, 0xda, 0x5e, 0x15, 0x46, 0x57, 0xa7, 0x8d, 0x9d, 0x84,
	0x90, 0xd8, 0xab, 0x00, 0x8c, 0xbc, 0xd3, 0x0a, 0xf7, 0xe4, 0x58, 0x05, 0xb8, 0xb3, 0x45, 0x06,
	0xd0, 0x2c, 0x1e, 0x8f, 0xca, 0x3f, 0x0f, 0x02, 0xc1, 0xaf, 0xbd, 0x03, 0x01, 0x13, 0x8a, 0x6b,
	0x3a, 0x91, 0x11, 0x41, 0x4f, 0x67, 0xdc, 0xea, 0x97, 0xf2, 0xcf, 0xce, 0xf0, 0xb4, 0xe6, 0x73,
	0x96, 0xac, 0x74, 0x22, 0xe7, 0xad, 0x35, 0x85, 0xe2, 0xf9, 0x37, 0xe8, 0x1c, 0x75, 0xdf, 0x6e,
	0x47, 0xf1, 0x1a, 0x71, 0x1d, 0x29, 0xc5, 0x89, 0x6f, 0xb7, 0x62, 0x0e, 0xaa, 0x18, 0xbe, 0x1b,
	0xfc, 0x56, 0x3e, 0x4b, 0xc6, 0xd2, 0x79, 0x20, 0x9a, 0xdb, 0xc0, 0xfe, 0x78, 0xcd, 0x5a, 0xf4,
	0x1f, 0xdd, 0xa8, 0x33, 0x88, 0x07, 0xc7, 0x31, 0xb1, 0x12, 0x10, 0x59, 0x27, 0x80, 0xec, 0x5f,
	0x60, 0x51, 0x7f, 0xa9, 0x19, 0xb5, 0x4a, 0x0d, 0x2d, 0xe5, 0x7a, 0x9f, 0x93, 0xc9, 0x9c, 0xef,
	0xa0, 0xe0, 0x3b, 0x4d, 0xae, 0x2a, 0xf5, 0xb0, 0xc8, 0xeb, 0xbb, 0x3c, 0x83, 0x53, 0x99, 0x61,
	0x17, 0x2b, 0x04, 0x7e, 0xba, 0x77, 0xd6, 0x26, 0xe1, 0x69, 0x14, 0x63, 0x55, 0x21, 0x0c, 0x7d,
}

func gmul2(a uint8) uint8 {
	if a&0x80 != 0 {
		return (a << 1) ^ 0x1b
	}
	return a << 1
}

func gmul3s(a uint8) uint8  { return gmul2(a) ^ a }
func gmul9s(a uint8) uint8  { return gmul2(gmul2(gmul2(a))) ^ a }
func gmul11s(a uint8) uint8 { return gmul2(gmul2(gmul2(a))^a) ^ a }
func gmul13s(a uint8) uint8 { return gmul2(gmul2(gmul3s(a))) ^ a }
func gmul14s(a uint8) uint8 { return gmul2(gmul2(gmul3s(a)) ^ a) }

func subBytes(s []byte) {
	for i := 0; i < 16; i++ {
		s[i] = sbox[s[i]]
	}
}

func invSubBytes(s []byte) {
	for i := 0; i < 16; i++ {
		s[i] = invSbox[s[i]]
	}
}

func shiftRows(s []byte) {
	t := s[1]
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], t

	s[2], s[10] = s[10], s[2]
	s[6], s[14] = s[14], s[6]

	t = s[3]
	s[3], s[15], s[11], s[7] = s[15], s[11], s[7], t
}

func invShiftRows(s []byte) {
	t := s[13]
	s[13], s[9], s[5], s[1] = s[9], s[5], s[1], t

	s[2], s[10] = s[10], s[2]
	s[6], s[14] = s[14], s[6]

	t = s[7]
	s[7], s[11], s[15], s[3] = s[11], s[15], s[3], t
}

func mixColumns(s []byte) {
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := s[c*4+0], s[c*4+1], s[c*4+2], s[c*4+3]
		s[c*4+0] = gmul2(s0) ^ gmul3s(s1) ^ s2 ^ s3
		s[c*4+1] = s0 ^ gmul2(s1) ^ gmul3s(s2) ^ s3
		s[c*4+2] = s0 ^ s1 ^ gmul2(s2) ^ gmul3s(s3)
		s[c*4+3] = gmul3s(s0) ^ s1 ^ s2 ^ gmul2(s3)
	}
}

func invMixColumns(s []byte) {
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := s[c*4+0], s[c*4+1], s[c*4+2], s[c*4+3]
		s[c*4+0] = gmul14s(s0) ^ gmul11s(s1) ^ gmul13s(s2) ^ gmul9s(s3)
		s[c*4+1] = gmul9s(s0) ^ gmul14s(s1) ^ gmul11s(s2) ^ gmul13s(s3)
		s[c*4+2] = gmul13s(s0) ^ gmul9s(s1) ^ gmul14s(s2) ^ gmul11s(s3)
		s[c*4+3] = gmul11s(s0) ^ gmul13s(s1) ^ gmul9s(s2) ^ gmul14s(s3)
	}
}

func xorLane(s, k []byte) {
	for i := 0; i < 16; i++ {
		s[i] ^= k[i]
	}
}

func (softKernel) EncRound(state, keys []byte) {
	for off := 0; off < len(state); off += LaneSize {
		s := state[off : off+LaneSize]
		subBytes(s)
		shiftRows(s)
		mixColumns(s)
		xorLane(s, keys[off:off+LaneSize])
	}
}

func (softKernel) EncRoundLast(state, keys []byte) {
	for off := 0; off < len(state); off += LaneSize {
		s := state[off : off+LaneSize]
		subBytes(s)
		shiftRows(s)
		xorLane(s, keys[off:off+LaneSize])
	}
}

func (softKernel) DecRound(state, keys []byte) {
	for off := 0; off < len(state); off += LaneSize {
		s := state[off : off+LaneSize]
		invSubBytes(s)
		invShiftRows(s)
		invMixColumns(s)
		xorLane(s, keys[off:off+LaneSize])
	}
}

func (softKernel) DecRoundLast(state, keys []byte) {
	for off := 0; off < len(state); off += LaneSize {
		s := state[off : off+LaneSize]
		invSubBytes(s)
		invShiftRows(s)
		xorLane(s, keys[off:off+LaneSize])
	}
}

func (softKernel) InvMixColumns(block []byte) {
	invMixColumns(block[:LaneSize])
}
