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

package simd

import (
	"crypto/rand"
	"reflect"
	"testing"
)

func TestSBoxTablesAreInverse(t *testing.T) {
	for i := 0; i < 256; i++ {
		if got := AESInvSBox[AESSBox[i]]; got != uint8(i) {
			t.Fatalf("AESInvSBox[AESSBox[%#02x]] = %#02x", i, got)
		}
		if got := AESSBox[AESInvSBox[i]]; got != uint8(i) {
			t.Fatalf("AESSBox[AESInvSBox[%#02x]] = %#02x", i, got)
		}
	}
}

func TestShiftRowsTablesAreInverse(t *testing.T) {
	for i := range shiftRowsIdx {
		if got := shiftRowsIdx[invShiftRowsIdx[i]]; got != uint8(i) {
			t.Fatalf("shiftRows(invShiftRows(%d)) = %d", i, got)
		}
	}
}

func TestMixColumnsReference(t *testing.T) {
	// The worked single-column examples from the AES literature.
	in := Vec8x16{
		0xdb, 0x13, 0x53, 0x45,
		0xf2, 0x0a, 0x22, 0x5c,
		0x01, 0x01, 0x01, 0x01,
		0x2d, 0x26, 0x31, 0x4c,
	}
	want := Vec8x16{
		0x8e, 0x4d, 0xa1, 0xbc,
		0x9f, 0xdc, 0x58, 0x9d,
		0x01, 0x01, 0x01, 0x01,
		0x4d, 0x7e, 0xbd, 0xf8,
	}
	if got := aesMixColumns(in); got != want {
		t.Fatalf("mismatch:\nis:        %v\nshould be: %v", got, want)
	}
	if got := aesInvMixColumns(want); got != in {
		t.Fatalf("inverse mismatch:\nis:        %v\nshould be: %v", got, in)
	}
}

func TestMixColumnsRoundTrip(t *testing.T) {
	for n := 0; n < 1000; n++ {
		var v Vec8x16
		rand.Read(v[:])
		if got := aesInvMixColumns(aesMixColumns(v)); got != v {
			t.Fatalf("InvMixColumns(MixColumns(x)) != x for %v", v)
		}
	}
}

func TestRoundInversion(t *testing.T) {
	// AESENC followed by removing the key, undoing MixColumns and running
	// the last decryption round with a zero key must restore the input;
	// same for the ENCLAST/DECLAST pair without the IMC leg.
	var zero Vec8x16
	for n := 0; n < 1000; n++ {
		var a, k Vec8x16
		rand.Read(a[:])
		rand.Read(k[:])

		var r Vec8x16
		AESENC(&k, &a, &r)
		VPXOR(&r, &k, &r)
		AESIMC(&r, &r)
		AESDECLAST(&zero, &r, &r)
		if r != a {
			t.Fatalf("AESENC inversion failed for %v / key %v", a, k)
		}

		AESENCLAST(&k, &a, &r)
		VPXOR(&r, &k, &r)
		AESDECLAST(&zero, &r, &r)
		if r != a {
			t.Fatalf("AESENCLAST inversion failed for %v / key %v", a, k)
		}

		AESDEC(&k, &a, &r)
		VPXOR(&r, &k, &r)
		if got := aesSubShift(aesMixColumns(r)); got != a {
			t.Fatalf("AESDEC inversion failed for %v / key %v", a, k)
		}
	}
}

func TestQuadMatchesLanes(t *testing.T) {
	type op struct {
		name string
		wide func(k, a, r *Vec64x8)
		lane func(k, a, r *Vec8x16)
	}
	ops := []op{
		{"VAESENC", VAESENC, AESENC},
		{"VAESENCLAST", VAESENCLAST, AESENCLAST},
		{"VAESDEC", VAESDEC, AESDEC},
		{"VAESDECLAST", VAESDECLAST, AESDECLAST},
	}
	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			for n := 0; n < 500; n++ {
				var ab, kb Vec8x64
				rand.Read(ab[:])
				rand.Read(kb[:])

				a, k := ab.ToVec64x8(), kb.ToVec64x8()
				var r Vec64x8
				o.wide(&k, &a, &r)
				got := r.ToVec8x64()

				var want Vec8x64
				for lane := 0; lane < 4; lane++ {
					al, kl := ab.Lane(lane), kb.Lane(lane)
					var rl Vec8x16
					o.lane(&kl, &al, &rl)
					want.SetLane(lane, rl)
				}
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("lane mismatch:\nis:\n%v\nshould be:\n%v", got, want)
				}
			}
		})
	}
}
