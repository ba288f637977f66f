// SPDX-License-Identifier: MIT

package spgemm

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/grailbio/base/log"
	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Mxm computes C<mask> = A*B, trying Saxpy first and multiplying with
// Reference when Saxpy reports ErrNotApplicable. Every other error is
// returned as is. Stats and metrics describe the call as a whole: one
// multiply is recorded, flagged as a dense fallback when Reference ran.
func Mxm[T any](mask *Mask, a, b *sparse.Matrix[T], sr semiring.Semiring[T], opts ...Option) (*sparse.Matrix[T], error) {
	o := gatherOptions(opts...)
	began := time.Now()
	var st Stats
	c, err := saxpy(mask, a, b, sr, &o, &st)
	if errors.Is(err, ErrNotApplicable) {
		if o.verbose {
			log.Debug.Printf("spgemm %s: full×full without mask, dense fallback", sr.Name)
		}
		c, err = Reference(mask, a, b, sr, opts...)
		st = Stats{Threads: o.threads, DenseFallback: true}
		if c != nil {
			st.Nvals = c.Nvals()
		}
	}
	st.Duration = time.Since(began)
	publish(&o, sr.Name, st, err)

	return c, err
}
