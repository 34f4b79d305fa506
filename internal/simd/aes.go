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

// This file emulates the AES round instructions: the 128-bit lane forms
// (AESENC, AESENCLAST, AESDEC, AESDECLAST, AESIMC) and the VAES forms that
// process four 128-bit lanes packed into one 512-bit register. A lane is an
// AES state in the FIPS-197 column-major byte order. The key operand is
// XORed into the result after the round transformation, matching the
// instruction semantics rather than the textbook AddRoundKey-first order.

package simd

// AESSBox is the FIPS-197 AES S-box.
var AESSBox = [256]uint8{
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

// AESInvSBox is the inverse of AESSBox.
var AESInvSBox = [256]uint8{
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

// shiftRowsIdx[i] is the source index of output byte i under ShiftRows,
// with the state in column-major order: byte (row r, column c) at 4c+r.
var shiftRowsIdx = [16]uint8{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}

var invShiftRowsIdx = [16]uint8{0, 13, 10, 7, 4, 1, 14, 11, 8, 5, 2, 15, 12, 9, 6, 3}

func xtime(a uint8) uint8 {
	if a&0x80 != 0 {
		return (a << 1) ^ 0x1b
	}
	return a << 1
}

func gmul3(a uint8) uint8  { return xtime(a) ^ a }
func gmul9(a uint8) uint8  { return xtime(xtime(xtime(a))) ^ a }
func gmul11(a uint8) uint8 { return xtime(xtime(xtime(a))^a) ^ a }
func gmul13(a uint8) uint8 { return xtime(xtime(gmul3(a))) ^ a }
func gmul14(a uint8) uint8 { return xtime(xtime(gmul3(a)) ^ a) }

func aesSubShift(v Vec8x16) Vec8x16 {
	var r Vec8x16
	for i := range r {
		r[i] = AESSBox[v[shiftRowsIdx[i]]]
	}
	return r
}

func aesInvSubShift(v Vec8x16) Vec8x16 {
	var r Vec8x16
	for i := range r {
		r[i] = AESInvSBox[v[invShiftRowsIdx[i]]]
	}
	return r
}

func aesMixColumns(v Vec8x16) Vec8x16 {
	var r Vec8x16
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := v[c*4+0], v[c*4+1], v[c*4+2], v[c*4+3]
		r[c*4+0] = xtime(s0) ^ gmul3(s1) ^ s2 ^ s3
		r[c*4+1] = s0 ^ xtime(s1) ^ gmul3(s2) ^ s3
		r[c*4+2] = s0 ^ s1 ^ xtime(s2) ^ gmul3(s3)
		r[c*4+3] = gmul3(s0) ^ s1 ^ s2 ^ xtime(s3)
	}
	return r
}

func aesInvMixColumns(v Vec8x16) Vec8x16 {
	var r Vec8x16
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := v[c*4+0], v[c*4+1], v[c*4+2], v[c*4+3]
		r[c*4+0] = gmul14(s0) ^ gmul11(s1) ^ gmul13(s2) ^ gmul9(s3)
		r[c*4+1] = gmul9(s0) ^ gmul14(s1) ^ gmul11(s2) ^ gmul13(s3)
		r[c*4+2] = gmul13(s0) ^ gmul9(s1) ^ gmul14(s2) ^ gmul11(s3)
		r[c*4+3] = gmul11(s0) ^ gmul13(s1) ^ gmul9(s2) ^ gmul14(s3)
	}
	return r
}

// AESENC performs one AES encryption round on a single 128-bit lane:
// r = MixColumns(ShiftRows(SubBytes(a))) ^ k
func AESENC(k, a, r *Vec8x16) {
	t := aesMixColumns(aesSubShift(*a))
	VPXOR(&t, k, r)
}

// AESENCLAST performs the final AES encryption round (no MixColumns).
func AESENCLAST(k, a, r *Vec8x16) {
	t := aesSubShift(*a)
	VPXOR(&t, k, r)
}

// AESDEC performs one AES decryption round on a single 128-bit lane:
// r = InvMixColumns(InvSubBytes(InvShiftRows(a))) ^ k
func AESDEC(k, a, r *Vec8x16) {
	t := aesInvMixColumns(aesInvSubShift(*a))
	VPXOR(&t, k, r)
}

// AESDECLAST performs the final AES decryption round (no InvMixColumns).
func AESDECLAST(k, a, r *Vec8x16) {
	t := aesInvSubShift(*a)
	VPXOR(&t, k, r)
}

// AESIMC applies the standalone InvMixColumns transformation.
func AESIMC(a, r *Vec8x16) {
	*r = aesInvMixColumns(*a)
}

// VAESENC applies AESENC to each of the four 128-bit lanes of a.
func VAESENC(k, a, r *Vec64x8) {
	kb, ab := k.ToVec8x64(), a.ToVec8x64()
	var rb Vec8x64
	for n := 0; n < 4; n++ {
		kl, al := kb.Lane(n), ab.Lane(n)
		var rl Vec8x16
		AESENC(&kl, &al, &rl)
		rb.SetLane(n, rl)
	}
	*r = rb.ToVec64x8()
}

// VAESENCLAST applies AESENCLAST to each of the four 128-bit lanes of a.
func VAESENCLAST(k, a, r *Vec64x8) {
	kb, ab := k.ToVec8x64(), a.ToVec8x64()
	var rb Vec8x64
	for n := 0; n < 4; n++ {
		kl, al := kb.Lane(n), ab.Lane(n)
		var rl Vec8x16
		AESENCLAST(&kl, &al, &rl)
		rb.SetLane(n, rl)
	}
	*r = rb.ToVec64x8()
}

// VAESDEC applies AESDEC to each of the four 128-bit lanes of a.
func VAESDEC(k, a, r *Vec64x8) {
	kb, ab := k.ToVec8x64(), a.ToVec8x64()
	var rb Vec8x64
	for n := 0; n < 4; n++ {
		kl, al := kb.Lane(n), ab.Lane(n)
		var rl Vec8x16
		AESDEC(&kl, &al, &rl)
		rb.SetLane(n, rl)
	}
	*r = rb.ToVec64x8()
}

// VAESDECLAST applies AESDECLAST to each of the four 128-bit lanes of a.
func VAESDECLAST(k, a, r *Vec64x8) {
	kb, ab := k.ToVec8x64(), a.ToVec8x64()
	var rb Vec8x64
	for n := 0; n < 4; n++ {
		kl, al := kb.Lane(n), ab.Lane(n)
		var rl Vec8x16
		AESDECLAST(&kl, &al, &rl)
		rb.SetLane(n, rl)
	}
	*r = rb.ToVec64x8()
}
