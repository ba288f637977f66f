// SPDX-License-Identifier: MIT

package semiring

import "github.com/cockroachdb/errors"

var (
	// ErrNilOperator is returned when a Monoid or Semiring lacks an operator.
	ErrNilOperator = errors.New("semiring: nil operator")
)
