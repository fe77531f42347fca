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

// AccountOptions carries the account settings attached to create and
// update operations
type AccountOptions struct {
	cbor.StructAsArray
	// MemoKey is the serialized memo-capable public key; it is opaque to
	// the admission rules
	MemoKey       []byte
	VotingAccount common.AccountId
	NumWitness    uint16
	NumCommittee  uint16
	Votes         []common.VoteId
	Extensions    []OptionsExtensionWrapper
}

// Validate checks the vote tally: the declared witness and committee
// targets must each be covered by a matching vote identifier. Surplus
// votes of any type are ignored.
func (o *AccountOptions) Validate() error {
	neededWitnesses := o.NumWitness
	neededCommittee := o.NumCommittee

	for _, id := range o.Votes {
		if id.Type() == common.VoteTypeWitness && neededWitnesses > 0 {
			neededWitnesses--
		} else if id.Type() == common.VoteTypeCommittee && neededCommittee > 0 {
			neededCommittee--
		}
	}

	if neededWitnesses != 0 || neededCommittee != 0 {
		return VoteTallyMismatchError{
			MissingWitnesses: neededWitnesses,
			MissingCommittee: neededCommittee,
		}
	}
	return nil
}

// extensions returns the options' extension payloads as the common
// dispatch type
func (o *AccountOptions) extensions() []common.Extension {
	if len(o.Extensions) == 0 {
		return nil
	}
	exts := make([]common.Extension, 0, len(o.Extensions))
	for _, wrapper := range o.Extensions {
		exts = append(exts, wrapper.Extension)
	}
	return exts
}
