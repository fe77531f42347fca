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
	"math/bits"
)

// OperationValidationRuleFunc represents a function that validates an
// operation against a specific admission rule.
type OperationValidationRuleFunc func(op Operation) error

// VerifyOperation runs the provided validation rules in order and wraps
// the first error encountered into a ValidationError. An operation is
// atomic: it is fully valid or rejected on the first failing rule.
func VerifyOperation(
	op Operation,
	validationRules []OperationValidationRuleFunc,
) error {
	for i, rule := range validationRules {
		if err := rule(op); err != nil {
			details := map[string]any{"rule_index": i}
			if op != nil {
				details["op_type"] = op.Type().String()
			}
			return NewValidationError(
				ValidationErrorTypeOperation,
				"operation validation failed",
				details,
				err,
			)
		}
	}
	return nil
}

// CalculateDataFee computes the fee component proportional to an
// operation's serialized size: size * pricePerKbyte / 1024, evaluated with
// a 128-bit intermediate. The result is capped at MaxShareSupply; a larger
// result is a DataFeeOverflowError.
func CalculateDataFee(size uint64, pricePerKbyte Amount) (Amount, error) {
	if pricePerKbyte.IsNegative() {
		return 0, fmt.Errorf(
			"price per kbyte must not be negative: %d",
			pricePerKbyte,
		)
	}
	hi, lo := bits.Mul64(size, uint64(pricePerKbyte))
	if hi >= BytesPerKbyte {
		return 0, DataFeeOverflowError{Size: size, PricePerKbyte: pricePerKbyte}
	}
	fee := hi<<(64-10) | lo>>10
	if fee > MaxShareSupply || fee > math.MaxInt64 {
		return 0, DataFeeOverflowError{Size: size, PricePerKbyte: pricePerKbyte}
	}
	return Amount(fee), nil
}

type DataFeeOverflowError struct {
	Size          uint64
	PricePerKbyte Amount
}

func (e DataFeeOverflowError) Error() string {
	return fmt.Sprintf(
		"data fee exceeds max share supply: size %d, price per kbyte %d",
		e.Size,
		e.PricePerKbyte,
	)
}
