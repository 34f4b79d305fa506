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

func VPXORQ(a, b, r *Vec64x8) {
	for i := range *r {
		r[i] = a[i] ^ b[i]
	}
}

func VPXOR(a, b, r *Vec8x16) {
	for i := range *r {
		r[i] = a[i] ^ b[i]
	}
}

func VMOVDQA64(a, r *Vec64x8) {
	*r = *a
}
