//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package shard

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"os"
	"time"
)

// Chronos is an abstraction of logical clock used by library.
type Chronos interface {
	// Spatially unique identifier ⟨𝒔⟩ of ID allocator, so called service
	S() uint64
	// Monotonically increasing logical clock ⟨𝒕⟩ and in-tick sequence ⟨𝒄⟩
	T() (uint64, uint64)
}

// Clock is global default instance of logical clock
//
// If the application needs own default clock e.g. one service per
// process, it declares own clock and mints identities against it.
var Clock Chronos = NewClock()

// Logical Clock Type, the default one
type clock struct {
	// Spatially unique identifier ⟨𝒔⟩
	service uint64
	// Monotonically increasing logical clock ⟨𝒕⟩ generator
	ticker func() uint64
	// Monotonic in-tick sequence ⟨𝒄⟩ generator
	unique func() uint64
}

func (clock clock) S() uint64           { return clock.service }
func (clock clock) T() (uint64, uint64) { return clock.ticker(), clock.unique() }

// Creates instance of logical clock
func NewClock(opts ...Config) Chronos {
	clock := &clock{}
	defopt := []Config{WithClockUnix(), WithServiceID(0), WithSequence(sequence)}

	for _, opt := range append(defopt, opts...) {
		opt(clock)
	}
	return clock
}

// Create mock instance of logical clock
func NewClockMock(opts ...Config) Chronos {
	clock := &clock{
		service: 0,
		ticker:  func() uint64 { return 0 },
		unique:  func() uint64 { return 0 },
	}

	for _, opt := range opts {
		opt(clock)
	}
	return clock
}

// Config option of default logical clock behavior.
// Config options allows to define custom strategies to generate
// ⟨𝒔⟩ service, ⟨𝒕⟩ timestamp or ⟨𝒄⟩ sequence.
type Config func(*clock)

// WithServiceID explicitly configures ⟨𝒔⟩ spatially unique identifier
func WithServiceID(id uint64) Config {
	return func(clock *clock) {
		clock.service = id & (1<<serviceBits - 1)
	}
}

// WithServiceFromEnv configures ⟨𝒔⟩ spatially unique identifier using env variable.
//
// CONFIG_SHARD_SERVICE_ID - defines service id as a string
func WithServiceFromEnv() Config {
	return func(clock *clock) {
		h := sha256.New()
		h.Write([]byte(os.Getenv("CONFIG_SHARD_SERVICE_ID")))
		hash := h.Sum(nil)
		clock.service = uint64(hash[0])<<8 | uint64(hash[1])
	}
}

// WithServiceRandom configures ⟨𝒔⟩ spatially unique identifier using cryptographic random generator
func WithServiceRandom() Config {
	return func(clock *clock) {
		rander := rand.Reader
		bytes := make([]byte, 8)
		if _, err := io.ReadFull(rander, bytes); err != nil {
			panic(err.Error())
		}

		service := uint64(0x0)
		for i, b := range bytes {
			service = service | uint64(b)<<(64-8*(i+1))
		}
		clock.service = service & (1<<serviceBits - 1)
	}
}

// WithClock configures a custom timestamp generator function
func WithClock(ticker func() uint64) Config {
	return func(clock *clock) {
		clock.ticker = ticker
	}
}

// WithClockUnix configures unix timestamp time.Now().UnixMilli() as generator function
func WithClockUnix() Config {
	return func(clock *clock) {
		clock.ticker = unixtime
	}
}

func unixtime() uint64 {
	return uint64(time.Now().UnixMilli())
}

// WithSequence configures the instance of Sequence as source of ⟨𝒄⟩
// in-tick monotonic integer
func WithSequence(seq *Sequence) Config {
	return func(clock *clock) {
		clock.unique = seq.Next
	}
}

// WithCounter configures a custom generator for ⟨𝒄⟩ in-tick monotonic integer
func WithCounter(unique func() uint64) Config {
	return func(clock *clock) {
		clock.unique = unique
	}
}
