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

// AccountCreateOperation registers a new account on the chain
type AccountCreateOperation struct {
	cbor.StructAsArray
	OpFee           common.Amount
	Registrar       common.AccountId
	Referrer        common.AccountId
	ReferrerPercent uint16
	Name            string
	Owner           common.Authority
	Active          common.Authority
	Options         AccountOptions
	// Extensions is reserved for future use and carried opaque
	Extensions []cbor.RawMessage
}

func (o *AccountCreateOperation) Fee() common.Amount {
	return o.OpFee
}

func (o *AccountCreateOperation) Type() common.OperationType {
	return common.OperationTypeAccountCreate
}

func (o *AccountCreateOperation) PackedSize() (uint64, error) {
	return cbor.EncodedSize(o)
}

// AccountUpdateOperation changes an existing account's authorities and/or
// options. Owner, Active and NewOptions are each optional, but at least
// one must be present.
type AccountUpdateOperation struct {
	cbor.StructAsArray
	OpFee      common.Amount
	Account    common.AccountId
	Owner      common.Authority
	Active     common.Authority
	NewOptions *AccountOptions
	Extensions []UpdateExtensionWrapper
}

func (o *AccountUpdateOperation) Fee() common.Amount {
	return o.OpFee
}

func (o *AccountUpdateOperation) Type() common.OperationType {
	return common.OperationTypeAccountUpdate
}

func (o *AccountUpdateOperation) PackedSize() (uint64, error) {
	return cbor.EncodedSize(o)
}

// AccountUpgradeOperation upgrades an account to lifetime membership or
// renews its annual membership
type AccountUpgradeOperation struct {
	cbor.StructAsArray
	OpFee                   common.Amount
	AccountToUpgrade        common.AccountId
	UpgradeToLifetimeMember bool
	// Extensions is reserved for future use and carried opaque
	Extensions []cbor.RawMessage
}

func (o *AccountUpgradeOperation) Fee() common.Amount {
	return o.OpFee
}

func (o *AccountUpgradeOperation) Type() common.OperationType {
	return common.OperationTypeAccountUpgrade
}

func (o *AccountUpgradeOperation) PackedSize() (uint64, error) {
	return cbor.EncodedSize(o)
}

// AccountTransferOperation transfers ownership of an account to a new
// owner account
type AccountTransferOperation struct {
	cbor.StructAsArray
	OpFee     common.Amount
	AccountId common.AccountId
	NewOwner  common.AccountId
	// Extensions is reserved for future use and carried opaque
	Extensions []cbor.RawMessage
}

func (o *AccountTransferOperation) Fee() common.Amount {
	return o.OpFee
}

func (o *AccountTransferOperation) Type() common.OperationType {
	return common.OperationTypeAccountTransfer
}

func (o *AccountTransferOperation) PackedSize() (uint64, error) {
	return cbor.EncodedSize(o)
}
