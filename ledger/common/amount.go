// Copyright 2026 Quartz Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"fmt"
	"math"
)

// Amount is a quantity of the chain's fee-bearing core asset. Arithmetic on
// fee amounts is overflow-checked: a fee that cannot be represented is an
// error, never a wrapped value.
type Amount int64

func (a Amount) IsNegative() bool {
	return a < 0
}

// Add returns a + b, or an AmountOverflowError if the sum cannot be
// represented
func (a Amount) Add(b Amount) (Amount, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, AmountOverflowError{A: a, B: b}
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, AmountOverflowError{A: a, B: b}
	}
	return a + b, nil
}

type AmountOverflowError struct {
	A Amount
	B Amount
}

func (e AmountOverflowError) Error() string {
	return fmt.Sprintf(
		"amount overflow: %d + %d",
		e.A,
		e.B,
	)
}
