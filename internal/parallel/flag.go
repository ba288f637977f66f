// SPDX-License-Identifier: MIT

package parallel

import "sync/atomic"

// failFlag is a one-way latch shared by the workers of a single Run.
type failFlag struct{ v atomic.Bool }

func (f *failFlag) set()        { f.v.Store(true) }
func (f *failFlag) isSet() bool { return f.v.Load() }
