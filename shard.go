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

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/holiman/uint256"
)

/*

ID is the identity of an event, the triple ⟨𝒕, 𝒔, 𝒄⟩ packed into single
unsigned integer. The zero value is the identity with all fractions set
to zero.
*/
type ID struct{ num uint256.Int }

/*

New mints the identity using the logical clock: ⟨𝒕⟩ timestamp and ⟨𝒄⟩
in-tick sequence are taken from the clock, ⟨𝒔⟩ is the service the clock
is configured with.

       48 bit               16 bit      16 bit
  |-----------------------|---------|---------|
            ⟨𝒕⟩               ⟨𝒔⟩        ⟨𝒄⟩

*/
func New(clock Chronos) ID {
	t, seq := clock.T()
	return mkID(t, clock.S(), seq)
}

func mkID(t, s, c uint64) (uid ID) {
	uid.num = fold(uid.num, timeShift, timeBits, t)
	uid.num = fold(uid.num, serviceShift, serviceBits, s)
	uid.num = fold(uid.num, countShift, countBits, c)
	return
}

/*

Clone mints the identity with same fractions as the original one.
Fractions are copied one by one, bits outside of the identity schema
are not inherited.
*/
func Clone(uid ID) ID {
	return mkID(Time(uid), Service(uid), Count(uid))
}

/*

FromValue casts the raw unsigned integer to the identity. Fractions are
not validated, values wider than the schema keep their high bits intact.
*/
func FromValue(val uint256.Int) ID {
	return ID{num: val}
}

/*

FromString parses the string encoding of the identity. The value is
parsed with Base62 alphabet unless the custom one is given.
*/
func FromString(val string, abc ...Alphabet) (ID, error) {
	codec := Base62
	if len(abc) != 0 {
		codec = abc[0]
	}

	num, err := codec.Decode(val)
	if err != nil {
		return ID{}, err
	}

	return ID{num: num}, nil
}

/*******************************************************************************

Lenses of Identity

*******************************************************************************/

/*

Time returns ⟨𝒕⟩ timestamp fraction from identity, milliseconds of Unix
epoch at the moment the identity was minted.
*/
func Time(uid ID) uint64 {
	return split(uid.num, timeShift, timeBits)
}

/*

TimeUnix returns ⟨𝒕⟩ timestamp fraction from identity as time.Time.
*/
func TimeUnix(uid ID) time.Time {
	return time.UnixMilli(int64(Time(uid)))
}

/*

Service returns ⟨𝒔⟩ service fraction from identity, the spatially unique
identifier of the allocator.
*/
func Service(uid ID) uint64 {
	return split(uid.num, serviceShift, serviceBits)
}

/*

Count returns ⟨𝒄⟩ sequence fraction from identity, the value of in-tick
monotonic integer at the moment the identity was minted.
*/
func Count(uid ID) uint64 {
	return split(uid.num, countShift, countBits)
}

/*

Value returns the identity as the raw unsigned integer.
*/
func Value(uid ID) uint256.Int {
	return uid.num
}

/*******************************************************************************

Transforms of Identity

*******************************************************************************/

/*

WithTime returns a copy of the identity, ⟨𝒕⟩ fraction is replaced with
the given milliseconds of Unix epoch. The value is silently truncated
to the fraction width.
*/
func (uid ID) WithTime(t uint64) ID {
	uid.num = fold(uid.num, timeShift, timeBits, t)
	return uid
}

/*

WithTimeUnix returns a copy of the identity, ⟨𝒕⟩ fraction is replaced
with the given time.
*/
func (uid ID) WithTimeUnix(t time.Time) ID {
	return uid.WithTime(uint64(t.UnixMilli()))
}

/*

WithService returns a copy of the identity, ⟨𝒔⟩ fraction is replaced
with the given service identifier. The value is silently truncated to
the fraction width.
*/
func (uid ID) WithService(s uint64) ID {
	uid.num = fold(uid.num, serviceShift, serviceBits, s)
	return uid
}

/*

WithCount returns a copy of the identity, ⟨𝒄⟩ fraction is replaced with
the given sequence value. The value is silently truncated to the
fraction width.
*/
func (uid ID) WithCount(c uint64) ID {
	uid.num = fold(uid.num, countShift, countBits, c)
	return uid
}

/*

WithValue returns a copy of the identity, the whole packed integer is
replaced with the given one.
*/
func (uid ID) WithValue(val uint256.Int) ID {
	uid.num = val
	return uid
}

/*******************************************************************************

Identity "Algebra"

*******************************************************************************/

/*

Eq compares identities, returns true if values are equal
*/
func Eq(a, b ID) bool {
	return a.num.Eq(&b.num)
}

/*

Before compares identities, returns true if identity a is minted
before identity b
*/
func Before(a, b ID) bool {
	return a.num.Lt(&b.num)
}

/*

After compares identities, returns true if identity a is minted
after identity b
*/
func After(a, b ID) bool {
	return b.num.Lt(&a.num)
}

/*******************************************************************************

Codecs of Identity

*******************************************************************************/

var base62 = []rune(Base62)

/*

String encodes the identity to Base62 string
*/
func String(uid ID) string {
	return encode(base62, uid.num)
}

/*

ToString encodes the identity to string of the given alphabet symbols
*/
func ToString(uid ID, abc Alphabet) (string, error) {
	return abc.Encode(uid.num)
}

/*

Bytes encodes the identity to fixed width byte slice, big endian.
Bits outside of the identity schema are not encoded.
*/
func Bytes(uid ID) []byte {
	num := uid.num

	bytes := make([]byte, totalBytes)
	for i := totalBytes - 1; i >= 0; i-- {
		bytes[i] = byte(num.Uint64())
		num.Rsh(&num, 8)
	}

	return bytes
}

/*

FromBytes decodes the identity from fixed width byte slice
*/
func FromBytes(val []byte) ID {
	if len(val) != totalBytes {
		panic(fmt.Errorf("malformed identity: %v", val))
	}

	return ID{num: *new(uint256.Int).SetBytes(val)}
}

/*

UnmarshalJSON decodes the string encoding to the identity
*/
func (uid *ID) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}

	*uid, err = FromString(val)
	return
}

/*

MarshalJSON encodes the identity to JSON string
*/
func (uid ID) MarshalJSON() (bytes []byte, err error) {
	return json.Marshal(String(uid))
}

/*

String encoding of the identity
*/
func (uid ID) String() string {
	return String(uid)
}
