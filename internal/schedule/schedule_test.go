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

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPermutationTablesAreInverse(t *testing.T) {
	pairs := []struct {
		name     string
		fwd, inv [16]uint8
	}{
		{"P4", P4, P4Inv},
		{"P5", P5, P5Inv},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for i := 0; i < 16; i++ {
				if got := p.fwd[p.inv[i]]; got != uint8(i) {
					t.Fatalf("fwd[inv[%d]] = %d", i, got)
				}
				if got := p.inv[p.fwd[i]]; got != uint8(i) {
					t.Fatalf("inv[fwd[%d]] = %d", i, got)
				}
			}
		})
	}
}

func TestPermutationsAreBijections(t *testing.T) {
	for _, tbl := range [][16]uint8{P4, P5, P4Inv, P5Inv} {
		var seen [16]bool
		for _, v := range tbl {
			if seen[v] {
				t.Fatalf("index %d duplicated in %v", v, tbl)
			}
			seen[v] = true
		}
	}
}

func TestKexpShuffleIsBijection(t *testing.T) {
	var seen [32]bool
	for _, v := range KexpShuffle {
		if seen[v] {
			t.Fatalf("index %d duplicated", v)
		}
		seen[v] = true
	}
}

func TestRoundConstantsChain(t *testing.T) {
	// The table is the doubling chain continued past its period.
	for i, v := range RoundConstants {
		if want := rcChain[i%len(rcChain)]; v != want {
			t.Fatalf("RoundConstants[%d] = %#02x, want %#02x", i, v, want)
		}
	}
	if RoundConstants[0] != 0x01 || RoundConstants[1] != 0x02 || RoundConstants[2] != 0x04 {
		t.Fatal("chain must start 01 02 04")
	}
	// Each chain element is the GF(2^8) double of its predecessor.
	double := func(a uint8) uint8 {
		if a&0x80 != 0 {
			return (a << 1) ^ 0x1b
		}
		return a << 1
	}
	for i := 1; i < len(rcChain); i++ {
		if rcChain[i] != double(rcChain[i-1]) {
			t.Fatalf("rcChain[%d] is not the double of rcChain[%d]", i, i-1)
		}
	}
	if double(rcChain[len(rcChain)-1]) != rcChain[0] {
		t.Fatal("chain does not wrap to its first element")
	}
}

func TestRCGroups(t *testing.T) {
	for j := 0; j < 48; j++ {
		got := RC(j)
		if len(got) != 16 {
			t.Fatalf("group %d: %d bytes", j, len(got))
		}
		if !bytes.Equal(got, RoundConstants[16*j:16*j+16]) {
			t.Fatalf("group %d does not match the table", j)
		}
	}
}

func newKey(t *testing.T, n int) []byte {
	t.Helper()
	key := make([]byte, n)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	return key
}

func TestAdvanceRetreat(t *testing.T) {
	cases := []struct{ width, keyLen int }{
		{32, 16},
		{32, 32},
		{64, 32},
		{64, 64},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d/%d", tc.width, tc.keyLen), func(t *testing.T) {
			s := New(newKey(t, tc.keyLen), tc.width)
			orig := append([]byte(nil), s.Round()...)

			for n := 1; n <= 9; n++ {
				for i := 0; i < n; i++ {
					s.Advance()
				}
				for i := 0; i < n; i++ {
					s.Retreat()
				}
				if d := cmp.Diff(orig, s.Round()); d != "" {
					t.Fatalf("%d advances not undone by %d retreats:\n%s", n, n, d)
				}
			}
		})
	}
}

func TestSeekMatchesAdvance(t *testing.T) {
	for _, tc := range []struct{ width, keyLen int }{{32, 32}, {64, 32}, {64, 64}} {
		t.Run(fmt.Sprintf("%d/%d", tc.width, tc.keyLen), func(t *testing.T) {
			key := newKey(t, tc.keyLen)
			for step := 0; step <= 9; step++ {
				a := New(key, tc.width)
				for i := 0; i < step; i++ {
					a.Advance()
				}
				b := New(key, tc.width)
				b.Seek(step)
				if d := cmp.Diff(a.Round(), b.Round()); d != "" {
					t.Fatalf("Seek(%d) differs from %d advances:\n%s", step, step, d)
				}
			}
		})
	}
}

func TestInitialRoundKeyIsHalfSwap(t *testing.T) {
	key := newKey(t, 32)
	s := New(key, 32)
	if !bytes.Equal(s.Round()[0:16], key[16:32]) || !bytes.Equal(s.Round()[16:32], key[0:16]) {
		t.Fatal("step-0 round key is not the half-swapped master key")
	}

	s = New(key[:16], 32)
	if !bytes.Equal(s.Fixed()[0:16], key[:16]) || !bytes.Equal(s.Fixed()[16:32], key[:16]) {
		t.Fatal("16-byte master key not replicated into the fixed key")
	}
}

func TestKexpShuffleAppliedTo512BitKeys(t *testing.T) {
	key := newKey(t, 64)
	s := New(key, 64)
	if !bytes.Equal(s.Fixed()[0:32], key[0:32]) {
		t.Fatal("lower key half must enter the fixed key verbatim")
	}
	for i, j := range KexpShuffle {
		if s.Fixed()[32+i] != key[32+int(j)] {
			t.Fatalf("fixed byte %d: got %#02x, want key byte %d", 32+i, s.Fixed()[32+i], 32+j)
		}
	}

	// A 32-byte key enters both halves unshuffled.
	s = New(key[:32], 64)
	if !bytes.Equal(s.Fixed()[0:32], key[:32]) || !bytes.Equal(s.Fixed()[32:64], key[:32]) {
		t.Fatal("32-byte master key not replicated into both fixed-key halves")
	}
}

// Round keys must not repeat within the step range any accepted round
// count can reach: positions 0..7 for the 32-byte width (P4 and P5 are
// order-8 permutations, so the sequence cycles after 8 steps) and 0..9
// for the 64-byte width.
func TestRoundKeysDistinctAcrossSteps(t *testing.T) {
	for _, width := range []int{32, 64} {
		last := 7
		if width == 64 {
			last = 9
		}
		s := New(newKey(t, 32), width)
		seen := map[string]int{}
		for step := 0; step <= last; step++ {
			k := string(s.Round())
			if prev, dup := seen[k]; dup {
				t.Fatalf("width %d: step %d round key repeats step %d", width, step, prev)
			}
			seen[k] = step
			s.Advance()
		}
	}
}
