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

package common_test

import (
	"errors"
	"math"
	"testing"

	"github.com/quartzlabs-io/gographene/ledger/common"

	"github.com/stretchr/testify/assert"
)

type testOperation struct {
	fee common.Amount
}

func (o *testOperation) Fee() common.Amount {
	return o.fee
}

func (o *testOperation) Type() common.OperationType {
	return common.OperationTypeAccountCreate
}

func (o *testOperation) PackedSize() (uint64, error) {
	return 0, nil
}

func TestVerifyOperation(t *testing.T) {
	testErr := errors.New("test failure")
	passRule := func(op common.Operation) error { return nil }
	failRule := func(op common.Operation) error { return testErr }
	t.Run("all rules pass", func(t *testing.T) {
		err := common.VerifyOperation(
			&testOperation{},
			[]common.OperationValidationRuleFunc{passRule, passRule},
		)
		assert.NoError(t, err)
	})
	t.Run("first failure wins", func(t *testing.T) {
		ruleRan := false
		trackingRule := func(op common.Operation) error {
			ruleRan = true
			return nil
		}
		err := common.VerifyOperation(
			&testOperation{},
			[]common.OperationValidationRuleFunc{
				passRule,
				failRule,
				trackingRule,
			},
		)
		assert.ErrorIs(t, err, testErr)
		assert.False(t, ruleRan, "rules after the first failure must not run")
		var validationErr *common.ValidationError
		if assert.ErrorAs(t, err, &validationErr) {
			assert.Equal(t, 1, validationErr.Details["rule_index"])
			assert.Equal(t, "account_create", validationErr.Details["op_type"])
		}
	})
	t.Run("empty rule list", func(t *testing.T) {
		assert.NoError(t, common.VerifyOperation(&testOperation{}, nil))
	})
}

func TestCalculateDataFee(t *testing.T) {
	testDefs := []struct {
		size          uint64
		pricePerKbyte common.Amount
		expected      common.Amount
	}{
		{size: 0, pricePerKbyte: 100, expected: 0},
		{size: 1024, pricePerKbyte: 100, expected: 100},
		{size: 1536, pricePerKbyte: 100, expected: 150},
		// Integer division truncates
		{size: 1, pricePerKbyte: 100, expected: 0},
		{size: 1023, pricePerKbyte: 1024, expected: 1023},
		{size: 2048, pricePerKbyte: 0, expected: 0},
	}
	for _, testDef := range testDefs {
		result, err := common.CalculateDataFee(
			testDef.size,
			testDef.pricePerKbyte,
		)
		if err != nil {
			t.Errorf(
				"CalculateDataFee(%d, %d) returned unexpected error: %s",
				testDef.size,
				testDef.pricePerKbyte,
				err,
			)
			continue
		}
		if result != testDef.expected {
			t.Errorf(
				"CalculateDataFee(%d, %d) returned %d, wanted %d",
				testDef.size,
				testDef.pricePerKbyte,
				result,
				testDef.expected,
			)
		}
	}
	t.Run("negative price", func(t *testing.T) {
		_, err := common.CalculateDataFee(1024, -1)
		assert.Error(t, err)
	})
	t.Run("result above max share supply", func(t *testing.T) {
		_, err := common.CalculateDataFee(
			math.MaxUint64/2,
			common.MaxShareSupply,
		)
		var expectedErr common.DataFeeOverflowError
		assert.ErrorAs(t, err, &expectedErr)
	})
}
