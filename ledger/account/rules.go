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

package account

import (
	"errors"

	"github.com/quartzlabs-io/gographene/ledger/common"
)

var AccountCreateValidationRules = []common.OperationValidationRuleFunc{
	ValidateFeeNotNegative,
	ValidateCreateName,
	ValidateCreateReferrerPercent,
	ValidateCreateOwnerAuthority,
	ValidateCreateActiveAuthority,
	ValidateCreateOptions,
	ValidateCreateOptionsExtensions,
}

var AccountUpdateValidationRules = []common.OperationValidationRuleFunc{
	ValidateUpdateNotTempAccount,
	ValidateFeeNotNegative,
	ValidateUpdateNotDefaultAccount,
	ValidateUpdateHasChanges,
	ValidateUpdateOwnerAuthority,
	ValidateUpdateActiveAuthority,
	ValidateUpdateNewOptions,
	ValidateUpdateExtensions,
}

var AccountUpgradeValidationRules = []common.OperationValidationRuleFunc{
	ValidateFeeNotNegative,
}

var AccountTransferValidationRules = []common.OperationValidationRuleFunc{
	ValidateFeeNotNegative,
}

// Validate checks the operation's structural invariants, stopping at the
// first failing rule
func (o *AccountCreateOperation) Validate() error {
	return common.VerifyOperation(o, AccountCreateValidationRules)
}

// Validate checks the operation's structural invariants, stopping at the
// first failing rule
func (o *AccountUpdateOperation) Validate() error {
	return common.VerifyOperation(o, AccountUpdateValidationRules)
}

// Validate checks the operation's structural invariants
func (o *AccountUpgradeOperation) Validate() error {
	return common.VerifyOperation(o, AccountUpgradeValidationRules)
}

// Validate checks the operation's structural invariants
func (o *AccountTransferOperation) Validate() error {
	return common.VerifyOperation(o, AccountTransferValidationRules)
}

// ValidateFeeNotNegative ensures the operation's declared fee amount is
// not negative. It applies to every operation kind.
func ValidateFeeNotNegative(op common.Operation) error {
	if fee := op.Fee(); fee.IsNegative() {
		return NegativeFeeError{Fee: fee}
	}
	return nil
}

// ValidateCreateName ensures the new account's name passes the name
// grammar
func ValidateCreateName(op common.Operation) error {
	tmpOp, ok := op.(*AccountCreateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if !IsValidName(tmpOp.Name) {
		return InvalidNameError{Name: tmpOp.Name}
	}
	return nil
}

// ValidateCreateReferrerPercent ensures the referrer's cut does not exceed
// 100%
func ValidateCreateReferrerPercent(op common.Operation) error {
	tmpOp, ok := op.(*AccountCreateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if tmpOp.ReferrerPercent > common.Percent100 {
		return ReferrerPercentError{ReferrerPercent: tmpOp.ReferrerPercent}
	}
	return nil
}

// ValidateCreateOwnerAuthority ensures the new account's owner authority
// is well formed: at least one authorization entry, no plain-address
// entries, and a satisfiable threshold
func ValidateCreateOwnerAuthority(op common.Operation) error {
	tmpOp, ok := op.(*AccountCreateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	return validateAuthority(tmpOp.Owner, "owner")
}

// ValidateCreateActiveAuthority ensures the new account's active authority
// is well formed, with the same requirements as the owner authority
func ValidateCreateActiveAuthority(op common.Operation) error {
	tmpOp, ok := op.(*AccountCreateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	return validateAuthority(tmpOp.Active, "active")
}

// ValidateCreateOptions ensures the new account's options pass the vote
// tally check
func ValidateCreateOptions(op common.Operation) error {
	tmpOp, ok := op.(*AccountCreateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	return tmpOp.Options.Validate()
}

// ValidateCreateOptionsExtensions dispatches the options extensions
// through the create-options rule set, which rejects every tag it does not
// explicitly accept
func ValidateCreateOptionsExtensions(op common.Operation) error {
	tmpOp, ok := op.(*AccountCreateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	return CreateOptionsExtensionRules.Validate(tmpOp.Options.extensions())
}

// ValidateUpdateNotTempAccount ensures the update does not target the
// reserved temporary account
func ValidateUpdateNotTempAccount(op common.Operation) error {
	tmpOp, ok := op.(*AccountUpdateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if tmpOp.Account == common.AccountIdTemp {
		return ReservedAccountError{Account: tmpOp.Account}
	}
	return nil
}

// ValidateUpdateNotDefaultAccount ensures the update does not target the
// default (zero) account identifier
func ValidateUpdateNotDefaultAccount(op common.Operation) error {
	tmpOp, ok := op.(*AccountUpdateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if tmpOp.Account == common.AccountIdCommittee {
		return ReservedAccountError{Account: tmpOp.Account}
	}
	return nil
}

// ValidateUpdateHasChanges ensures the update changes at least one of the
// owner authority, active authority or options. A no-op update is invalid.
func ValidateUpdateHasChanges(op common.Operation) error {
	tmpOp, ok := op.(*AccountUpdateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if tmpOp.Owner == nil && tmpOp.Active == nil && tmpOp.NewOptions == nil {
		return NoOpUpdateError{}
	}
	return nil
}

// ValidateUpdateOwnerAuthority ensures the new owner authority, when
// present, is well formed
func ValidateUpdateOwnerAuthority(op common.Operation) error {
	tmpOp, ok := op.(*AccountUpdateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if tmpOp.Owner == nil {
		return nil
	}
	return validateAuthority(tmpOp.Owner, "owner")
}

// ValidateUpdateActiveAuthority ensures the new active authority, when
// present, is well formed
func ValidateUpdateActiveAuthority(op common.Operation) error {
	tmpOp, ok := op.(*AccountUpdateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if tmpOp.Active == nil {
		return nil
	}
	return validateAuthority(tmpOp.Active, "active")
}

// ValidateUpdateNewOptions ensures the new options, when present, pass the
// vote tally check and dispatches their extensions through the
// update-options rule set, which accepts unrecognized tags as no-ops
func ValidateUpdateNewOptions(op common.Operation) error {
	tmpOp, ok := op.(*AccountUpdateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if tmpOp.NewOptions == nil {
		return nil
	}
	if err := tmpOp.NewOptions.Validate(); err != nil {
		return err
	}
	return UpdateOptionsExtensionRules.Validate(tmpOp.NewOptions.extensions())
}

// ValidateUpdateExtensions dispatches the operation's own top-level
// extension sequence through the update-operation rule set
func ValidateUpdateExtensions(op common.Operation) error {
	tmpOp, ok := op.(*AccountUpdateOperation)
	if !ok {
		return errors.New("operation is not expected type")
	}
	if len(tmpOp.Extensions) == 0 {
		return nil
	}
	exts := make([]common.Extension, 0, len(tmpOp.Extensions))
	for _, wrapper := range tmpOp.Extensions {
		exts = append(exts, wrapper.Extension)
	}
	return UpdateOperationExtensionRules.Validate(exts)
}

func validateAuthority(auth common.Authority, role string) error {
	if auth == nil || auth.NumAuths() == 0 {
		return MissingAuthsError{Role: role}
	}
	if count := auth.AddressAuthsCount(); count != 0 {
		return AddressAuthsError{Role: role, Count: count}
	}
	if auth.IsImpossible() {
		return ImpossibleAuthorityError{Role: role}
	}
	return nil
}
