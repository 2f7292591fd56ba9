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

package shard_test

import (
	"errors"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/shard"
	"github.com/holiman/uint256"
)

func TestBase62(t *testing.T) {
	spec := map[uint64]string{
		0:   "0",
		9:   "9",
		10:  "A",
		61:  "z",
		62:  "10",
		125: "21",
	}

	for val, expect := range spec {
		txt, err := shard.Base62.Encode(*uint256.NewInt(val))
		num, erd := shard.Base62.Decode(expect)

		it.Then(t).Should(
			it.True(err == nil),
			it.True(erd == nil),
			it.Equal(txt, expect),
			it.Equal(num.Uint64(), val),
		)
	}
}

func TestRadix(t *testing.T) {
	abc, err := shard.Radix(10)
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(abc, "0123456789"),
	)

	txt, err := abc.Encode(*uint256.NewInt(125))
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(txt, "125"),
	)

	num, err := abc.Decode("125")
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(num.Uint64(), 125),
	)

	zero, err := abc.Encode(uint256.Int{})
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(zero, "0"),
	)

	empty, err := abc.Decode("")
	it.Then(t).Should(
		it.True(err == nil),
		it.True(empty.IsZero()),
	)
}

func TestRadixUnsupported(t *testing.T) {
	for _, radix := range []int{-1, 0, 1, 63, 100} {
		_, err := shard.Radix(radix)

		it.Then(t).Should(
			it.True(errors.Is(err, shard.ErrInvalidAlphabet)),
		)
	}
}

func TestAlphabetInvalid(t *testing.T) {
	for _, abc := range []shard.Alphabet{"", "a", "aa", "abcb"} {
		_, erc := abc.Encode(*uint256.NewInt(1))
		_, erd := abc.Decode("a")

		it.Then(t).Should(
			it.True(errors.Is(erc, shard.ErrInvalidAlphabet)),
			it.True(errors.Is(erd, shard.ErrInvalidAlphabet)),
		)
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	abc, err := shard.Radix(10)
	it.Then(t).Should(it.True(err == nil))

	_, err = abc.Decode("Z")
	it.Then(t).Should(
		it.True(errors.Is(err, shard.ErrInvalidCharacter)),
	)

	_, err = shard.Alphabet("01").Decode("012")
	it.Then(t).Should(
		it.True(errors.Is(err, shard.ErrInvalidCharacter)),
	)
}

func TestAlphabetCustom(t *testing.T) {
	bin := shard.Alphabet("01")

	txt, err := bin.Encode(*uint256.NewInt(5))
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(txt, "101"),
	)

	num, err := bin.Decode("101")
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(num.Uint64(), 5),
	)
}

func TestAlphabetRunes(t *testing.T) {
	abc := shard.Alphabet("αβγ")

	txt, err := abc.Encode(*uint256.NewInt(5))
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(txt, "βγ"),
	)

	num, err := abc.Decode("βγ")
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(num.Uint64(), 5),
	)
}

func TestCodecWideValues(t *testing.T) {
	num := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	num.Or(num, uint256.NewInt(12345))

	for _, abc := range []shard.Alphabet{shard.Base62, "01", "0123456789abcdef"} {
		txt, err := abc.Encode(*num)
		it.Then(t).Should(it.True(err == nil))

		val, err := abc.Decode(txt)
		it.Then(t).Should(
			it.True(err == nil),
			it.True(val.Eq(num)),
		)
	}
}
