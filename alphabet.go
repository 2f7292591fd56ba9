//
//   Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
//

package shard

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// Alphabet is an ordered sequence of unique symbols. The position of the
// symbol defines its numerical value, the length of the sequence defines
// the radix of the positional numeral system.
type Alphabet string

// Base62 is the default alphabet: decimal digits, upper case latin,
// lower case latin.
const Base62 Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var (
	ErrInvalidAlphabet  = errors.New("invalid alphabet")
	ErrInvalidCharacter = errors.New("invalid character")
)

// Radix returns the canonical alphabet of the given radix, the prefix of
// Base62 table. It supports radix of 2 to 62, e.g. Radix(16) is the
// classical hexadecimal alphabet.
func Radix(radix int) (Alphabet, error) {
	if radix < 2 || radix > len(Base62) {
		return "", fmt.Errorf("%w: radix %d is not in 2 .. %d", ErrInvalidAlphabet, radix, len(Base62))
	}
	return Base62[:radix], nil
}

// symbols splits the alphabet to sequence of symbols, checking the
// numeral system contract
func (abc Alphabet) symbols() ([]rune, error) {
	seq := []rune(abc)
	if len(seq) < 2 {
		return nil, fmt.Errorf("%w: requires at least 2 symbols", ErrInvalidAlphabet)
	}

	uniq := make(map[rune]struct{}, len(seq))
	for _, x := range seq {
		if _, has := uniq[x]; has {
			return nil, fmt.Errorf("%w: symbol %q is not unique", ErrInvalidAlphabet, x)
		}
		uniq[x] = struct{}{}
	}

	return seq, nil
}

// Encode renders the number as string of alphabet symbols, most
// significant first. The zero value is a single symbol at position 0,
// leading zeros are not emitted.
func (abc Alphabet) Encode(val uint256.Int) (string, error) {
	seq, err := abc.symbols()
	if err != nil {
		return "", err
	}

	return encode(seq, val), nil
}

func encode(seq []rune, val uint256.Int) string {
	if val.IsZero() {
		return string(seq[0])
	}

	radix := uint256.NewInt(uint64(len(seq)))
	rem := new(uint256.Int)

	txt := []rune{}
	for !val.IsZero() {
		val.DivMod(&val, radix, rem)
		txt = append(txt, seq[rem.Uint64()])
	}

	for i, j := 0, len(txt)-1; i < j; i, j = i+1, j-1 {
		txt[i], txt[j] = txt[j], txt[i]
	}

	return string(txt)
}

// Decode parses the string of alphabet symbols to the number,
// accumulating symbol values left to right. The empty string is the
// zero value.
func (abc Alphabet) Decode(val string) (uint256.Int, error) {
	seq, err := abc.symbols()
	if err != nil {
		return uint256.Int{}, err
	}

	index := make(map[rune]uint64, len(seq))
	for i, x := range seq {
		index[x] = uint64(i)
	}

	radix := uint256.NewInt(uint64(len(seq)))
	num := new(uint256.Int)

	for _, x := range val {
		d, has := index[x]
		if !has {
			return uint256.Int{}, fmt.Errorf("%w: symbol %q is not defined by the alphabet", ErrInvalidCharacter, x)
		}
		num.Mul(num, radix)
		num.AddUint64(num, d)
	}

	return *num, nil
}
