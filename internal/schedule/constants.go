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

package schedule

// rcChain is one full period of the doubling sequence x^k over GF(2^8)
// with the 0x11b reduction polynomial. The multiplicative order of x is
// 51, so the chain wraps after 51 values.
var rcChain = [51]uint8{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d, 0x9a, 0x2f,
	0x5e, 0xbc, 0x63, 0xc6, 0x97, 0x35, 0x6a, 0xd4, 0xb3, 0x7d, 0xfa, 0xef, 0xc5, 0x91, 0x39, 0x72,
	0xe4, 0xd3, 0xbd, 0x61, 0xc2, 0x9f, 0x25, 0x4a, 0x94, 0x33, 0x66, 0xcc, 0x83, 0x1d, 0x3a, 0x74,
	0xe8, 0xcb, 0x8d,
}

// RoundConstants is the round-constant byte table, read in 16-byte groups:
// group j is XORed into slice 0 of the state before step j+1.
var RoundConstants = func() (t [16 * 48]uint8) {
	for i := range t {
		t[i] = rcChain[i%len(rcChain)]
	}
	return
}()

// RC returns the j-th 16-byte round-constant group.
func RC(j int) []byte {
	return RoundConstants[16*j : 16*j+16]
}

// P4 and P5 are the per-step byte permutations of the two round-key slices
// of the 256-bit variant; P4Inv and P5Inv undo them. A permutation table p
// maps byte i of the output to byte p[i] of the input.
var (
	P4    = [16]uint8{7, 0, 13, 10, 11, 4, 1, 14, 15, 8, 5, 2, 3, 12, 9, 6}
	P5    = [16]uint8{4, 8, 12, 0, 5, 9, 13, 1, 6, 10, 14, 2, 7, 11, 15, 3}
	P4Inv = [16]uint8{1, 6, 11, 12, 5, 10, 15, 0, 9, 14, 3, 4, 13, 2, 7, 8}
	P5Inv = [16]uint8{3, 7, 11, 15, 0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14}
)

// KexpShuffle spreads the upper half of a 512-bit master key before it
// enters the fixed-key slots: even-indexed bytes first, then odd-indexed.
var KexpShuffle = [32]uint8{
	0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30,
	1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31,
}
