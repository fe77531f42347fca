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
	"github.com/quartzlabs-io/gographene/cbor"
	"github.com/quartzlabs-io/gographene/ledger/common"
)

// AccountCreateFeeParameters is the fee constants for the create
// operation. Cheap names pay BasicFee, all others PremiumFee.
type AccountCreateFeeParameters struct {
	cbor.StructAsArray
	BasicFee      common.Amount
	PremiumFee    common.Amount
	PricePerKbyte common.Amount
}

// AccountUpdateFeeParameters is the fee constants for the update operation
type AccountUpdateFeeParameters struct {
	cbor.StructAsArray
	Fee           common.Amount
	PricePerKbyte common.Amount
}

// AccountUpgradeFeeParameters is the fee constants for the upgrade
// operation
type AccountUpgradeFeeParameters struct {
	cbor.StructAsArray
	MembershipAnnualFee   common.Amount
	MembershipLifetimeFee common.Amount
}

// AccountTransferFeeParameters is the fee constants for the transfer
// operation
type AccountTransferFeeParameters struct {
	cbor.StructAsArray
	Fee common.Amount
}

// CalculateFee computes the fee required to create an account: the basic
// or premium fee depending on the name's cost tier, plus a data fee over
// the operation's packed size. Authorities and vote lists can be
// arbitrarily large, so large operations pay for their storage.
func (o *AccountCreateOperation) CalculateFee(
	params AccountCreateFeeParameters,
) (common.Amount, error) {
	coreFeeRequired := params.BasicFee
	if !IsCheapName(o.Name) {
		coreFeeRequired = params.PremiumFee
	}
	packedSize, err := o.PackedSize()
	if err != nil {
		return 0, err
	}
	dataFee, err := common.CalculateDataFee(packedSize, params.PricePerKbyte)
	if err != nil {
		return 0, err
	}
	return coreFeeRequired.Add(dataFee)
}

// CalculateFee computes the fee required to update an account: the flat
// fee constant, plus a data fee over the operation's packed size when new
// options are attached
func (o *AccountUpdateOperation) CalculateFee(
	params AccountUpdateFeeParameters,
) (common.Amount, error) {
	coreFeeRequired := params.Fee
	if o.NewOptions == nil {
		return coreFeeRequired, nil
	}
	packedSize, err := o.PackedSize()
	if err != nil {
		return 0, err
	}
	dataFee, err := common.CalculateDataFee(packedSize, params.PricePerKbyte)
	if err != nil {
		return 0, err
	}
	return coreFeeRequired.Add(dataFee)
}

// CalculateFee computes the fee required to upgrade an account: the
// lifetime membership fee when upgrading to lifetime membership, the
// annual fee otherwise
func (o *AccountUpgradeOperation) CalculateFee(
	params AccountUpgradeFeeParameters,
) (common.Amount, error) {
	if o.UpgradeToLifetimeMember {
		return params.MembershipLifetimeFee, nil
	}
	return params.MembershipAnnualFee, nil
}

// CalculateFee computes the fee required to transfer an account: the flat
// fee constant, with no data-fee component
func (o *AccountTransferOperation) CalculateFee(
	params AccountTransferFeeParameters,
) (common.Amount, error) {
	return params.Fee, nil
}
