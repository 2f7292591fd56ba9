/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package shard

import "github.com/holiman/uint256"

// Identity schema, the layout is fixed and shared by all producers
// and consumers of identities
//
//        48 bit               16 bit      16 bit
//  |-----------------------|---------|---------|
//            ⟨𝒕⟩               ⟨𝒔⟩        ⟨𝒄⟩
const (
	timeBits    = 48
	serviceBits = 16
	countBits   = 16

	countShift   = 0
	serviceShift = countBits
	timeShift    = countBits + serviceBits

	totalBits  = timeBits + serviceBits + countBits
	totalBytes = totalBits / 8
)

// fold injects the fraction into the identity at the given offset,
// low bits of the value replace the fraction, high bits are truncated
func fold(uid uint256.Int, offset, bits uint, val uint64) uint256.Int {
	hole := new(uint256.Int).Lsh(ones(bits), offset)

	v := uint256.NewInt(val)
	v.And(v, ones(bits))
	v.Lsh(v, offset)

	uid.And(&uid, hole.Not(hole))
	uid.Or(&uid, v)
	return uid
}

// split ejects the fraction out of the identity at the given offset
func split(uid uint256.Int, offset, bits uint) uint64 {
	uid.Rsh(&uid, offset)
	uid.And(&uid, ones(bits))
	return uid.Uint64()
}

// ones makes the mask of n low bits
func ones(bits uint) *uint256.Int {
	mask := uint256.NewInt(1)
	mask.Lsh(mask, bits)
	return mask.SubUint64(mask, 1)
}
