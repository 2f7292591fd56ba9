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

import "sync/atomic"

// Sequence is the source of ⟨𝒄⟩ fraction, the monotonic integer unique
// for each identity minted by the process within single tick of the
// clock. The sequence is restarted with the process. The zero value is
// ready to use.
type Sequence struct {
	val atomic.Uint64
}

// Next returns the successor value of the sequence. It is safe for
// concurrent use, the value silently wraps around to zero once the
// capacity of ⟨𝒄⟩ fraction is exhausted.
func (seq *Sequence) Next() uint64 {
	return (seq.val.Add(1) - 1) & (1<<countBits - 1)
}

// the process-wide sequence, used by default instances of the clock
var sequence = &Sequence{}
