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

/*

Package shard implements compact sortable identities for Golang
applications. The identity is a triple ⟨𝒕, 𝒔, 𝒄⟩ packed into single
unsigned integer, minted in lock-free and decentralized manner. The
sequence of minted identities is k-ordered, it consists of strictly
ordered subsequences of length k:

  𝑨[𝒊 − 𝒌] ≤ 𝑨[𝒊] ≤ 𝑨[𝒊 + 𝒌] for all 𝒊 such that 𝒌 < 𝒊 ≤ 𝒏−𝒌.

Key features

This library aims important objectives:

↣ identity allocation does not require centralized authority or
coordination with other services.

↣ identities are roughly sortable by allocation order ("time").

↣ identities are compact, the string form is a short positional
numeral rendering suitable for URLs, keys and indexes.

↣ identities are parsable back to fractions, each identity names the
moment, the origin and the sequence of its creation.


Inspiration

The identity allocation in distributed systems is resolved by various
techniques, e.g. Universal Unique Identifiers (https://tools.ietf.org/html/rfc4122),
Twitter Snowflake (https://blog.twitter.com/engineering/en_us/a/2010/announcing-snowflake.html),
ULID (https://github.com/ulid/spec) and many other techniques offered
by open source libraries.

All these solution made a common conclusion, the unique identity is a
triple ⟨𝒕, 𝒔, 𝒄⟩:

↣ ⟨𝒕⟩ monotonically increasing clock or timestamp is a primary dimension
to roughly sort events,

↣ ⟨𝒔⟩ is spatially unique identifier of the allocator, so called
service or shard,

↣ ⟨𝒄⟩ sequence is a monotonic integer, which prevents collisions of
identities minted within single tick of the clock.

Identity Schema

A fixed size of 80-bit is used to implement the identity schema

       48 bit               16 bit      16 bit
  |-----------------------|---------|---------|
            ⟨𝒕⟩               ⟨𝒔⟩        ⟨𝒄⟩

↣ ⟨𝒕⟩ is 48-bit UTC timestamp with millisecond precision, the value of
time.Now().UnixMilli() at the moment the identity is minted. The width
of the fraction covers the timeline until the year 10889.

↣ ⟨𝒔⟩ is 16-bit service identifier. It is allocated to each instance of
the application either explicitly by the operator, from the environment
or using cryptographic random generator. Uniqueness of identities
across services relies entirely on distinct ⟨𝒔⟩ per process.

↣ ⟨𝒄⟩ is 16-bit monotonic strictly locally ordered integer. It helps to
avoid collisions when multiple identities are minted during single
millisecond. The 16-bit value allows to have about 65K allocations per
millisecond on single service. Each instance of application process
runs a unique sequence of integers, the sequence wraps around to zero
once the fraction capacity is exhausted and restarts with the process.

The packed 80-bit value exceeds the native machine word, the library
holds it with fixed wide unsigned integer arithmetic end to end, no
precision is lost on any fraction.

The identity is rendered to string with positional numeral system over
the alphabet given by the application, Base62 ([0-9A-Za-z]) is the
default one. The rendering is compact, e.g. identities minted nowadays
are 13 symbols of Base62.

Example usage

  uid := shard.New(shard.Clock)
  fmt.Println(uid)

  // mint identities of dedicated service
  c := shard.NewClock(shard.WithServiceID(42))
  uid := shard.New(c)

  // parse the identity back to fractions
  uid, err := shard.FromString("1tNsQx3RLdJf3")
  t := shard.TimeUnix(uid)

Applications

The schema has wide range of applications where compact sortable
identities are required.

↣ object identity: use library to generate unique identifiers.

↣ replacement of auto increment types: out-of-the-box replacement for
auto increment fields in databases.

↣ sharding: the ⟨𝒔⟩ fraction names the partition the entity belongs to.

*/
package shard
