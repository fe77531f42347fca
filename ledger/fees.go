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

package ledger

import (
	"github.com/quartzlabs-io/gographene/ledger/account"
	"github.com/quartzlabs-io/gographene/ledger/common"
)

// FeeSchedule bundles the per-operation fee parameter records supplied by
// chain governance. It is immutable from this module's point of view:
// fee calculation only reads it.
type FeeSchedule struct {
	AccountCreate   account.AccountCreateFeeParameters
	AccountUpdate   account.AccountUpdateFeeParameters
	AccountUpgrade  account.AccountUpgradeFeeParameters
	AccountTransfer account.AccountTransferFeeParameters
}

// CalculateFee computes the required fee for an operation under this
// schedule. The result is deterministic given the operation and the
// schedule; overflow is an error, never a wrapped value.
func (s FeeSchedule) CalculateFee(op common.Operation) (common.Amount, error) {
	switch tmpOp := op.(type) {
	case *account.AccountCreateOperation:
		return tmpOp.CalculateFee(s.AccountCreate)
	case *account.AccountUpdateOperation:
		return tmpOp.CalculateFee(s.AccountUpdate)
	case *account.AccountUpgradeOperation:
		return tmpOp.CalculateFee(s.AccountUpgrade)
	case *account.AccountTransferOperation:
		return tmpOp.CalculateFee(s.AccountTransfer)
	default:
		return 0, UnsupportedOperationError{Operation: op}
	}
}
