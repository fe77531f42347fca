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

// Package ledger is the surface consumed by the transaction-evaluation
// engine: it dispatches validation and fee calculation over the operation
// variant set. The per-operation rules live in the account subpackage.
package ledger

import (
	"fmt"

	"github.com/quartzlabs-io/gographene/ledger/account"
	"github.com/quartzlabs-io/gographene/ledger/common"
)

// Compatibility aliases for the most commonly consumed types
type (
	Amount          = common.Amount
	AccountId       = common.AccountId
	Authority       = common.Authority
	Operation       = common.Operation
	OperationType   = common.OperationType
	ValidationError = common.ValidationError
	VoteId          = common.VoteId
)

// ValidateOperation checks the structural and semantic invariants of an
// operation. It performs no signature verification and reads no chain
// state; a nil return means the operation is admissible as far as its own
// contents are concerned.
func ValidateOperation(op common.Operation) error {
	switch tmpOp := op.(type) {
	case *account.AccountCreateOperation:
		return tmpOp.Validate()
	case *account.AccountUpdateOperation:
		return tmpOp.Validate()
	case *account.AccountUpgradeOperation:
		return tmpOp.Validate()
	case *account.AccountTransferOperation:
		return tmpOp.Validate()
	default:
		return UnsupportedOperationError{Operation: op}
	}
}

type UnsupportedOperationError struct {
	Operation common.Operation
}

func (e UnsupportedOperationError) Error() string {
	if e.Operation == nil {
		return "unsupported operation: nil"
	}
	return fmt.Sprintf(
		"unsupported operation type: %s",
		e.Operation.Type(),
	)
}
