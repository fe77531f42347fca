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

// Package common provides the shared protocol types consumed by the
// per-operation admission rules: amounts, account and vote identifiers,
// the authority contract, and the validation plumbing.
package common

import (
	"fmt"
)

// Protocol constants. These are consensus-critical: changing any of them
// changes which operations every validating node accepts.
const (
	// MinAccountNameLength must stay >= 3. The name grammar scanner
	// assumes a minimum label length of 3 and is only correct under
	// that assumption.
	MinAccountNameLength = 3
	MaxAccountNameLength = 63

	// Percent100 is the fixed-point representation of 100%
	Percent100 = 10000

	// MaxShareSupply is the maximum share supply of the core asset and
	// the upper bound on any single fee
	MaxShareSupply = 1_000_000_000_000_000

	// BytesPerKbyte is the unit size for per-kilobyte data fees
	BytesPerKbyte = 1024
)

// OperationType identifies an operation variant. The numbering follows the
// protocol's operation variant order and must never be reordered.
type OperationType uint

const (
	OperationTypeAccountCreate   OperationType = 5
	OperationTypeAccountUpdate   OperationType = 6
	OperationTypeAccountUpgrade  OperationType = 8
	OperationTypeAccountTransfer OperationType = 9
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeAccountCreate:
		return "account_create"
	case OperationTypeAccountUpdate:
		return "account_update"
	case OperationTypeAccountUpgrade:
		return "account_upgrade"
	case OperationTypeAccountTransfer:
		return "account_transfer"
	default:
		return fmt.Sprintf("unknown (%d)", uint(t))
	}
}

// Operation is the read-only view of an operation shared by all variants.
// Operations are constructed by the serialization layer, validated, and
// discarded; nothing in this module mutates them.
type Operation interface {
	Fee() Amount
	Type() OperationType
	// PackedSize returns the serialized byte length of the operation,
	// used for data-fee calculation
	PackedSize() (uint64, error)
}

// AccountId is the instance number of an account object
type AccountId uint64

// Reserved account instances created at genesis
const (
	AccountIdCommittee        AccountId = 0
	AccountIdWitness          AccountId = 1
	AccountIdRelaxedCommittee AccountId = 2
	AccountIdNull             AccountId = 3
	AccountIdTemp             AccountId = 4
	AccountIdProxyToSelf      AccountId = 5
)

func (a AccountId) String() string {
	return fmt.Sprintf("1.2.%d", uint64(a))
}

// Authority is the threshold-signature permission object attached to an
// account. It is modeled and constructed elsewhere; the admission rules
// only query its shape.
type Authority interface {
	// NumAuths returns the number of distinct authorization entries
	NumAuths() uint32
	// AddressAuthsCount returns the number of plain-address entries
	AddressAuthsCount() uint32
	// IsImpossible reports whether the threshold cannot be satisfied by
	// any combination of entries
	IsImpossible() bool
}
