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
	"fmt"

	"github.com/quartzlabs-io/gographene/ledger/common"
)

type NegativeFeeError struct {
	Fee common.Amount
}

func (e NegativeFeeError) Error() string {
	return fmt.Sprintf(
		"fee must not be negative: %d",
		e.Fee,
	)
}

type InvalidNameError struct {
	Name string
}

func (e InvalidNameError) Error() string {
	return fmt.Sprintf(
		"invalid account name: %q",
		e.Name,
	)
}

type ReferrerPercentError struct {
	ReferrerPercent uint16
}

func (e ReferrerPercentError) Error() string {
	return fmt.Sprintf(
		"referrer percent exceeds 100%%: %d",
		e.ReferrerPercent,
	)
}

type MissingAuthsError struct {
	Role string
}

func (e MissingAuthsError) Error() string {
	return fmt.Sprintf(
		"%s authority must have at least one authorization entry",
		e.Role,
	)
}

type AddressAuthsError struct {
	Role  string
	Count uint32
}

func (e AddressAuthsError) Error() string {
	return fmt.Sprintf(
		"%s authority must not contain address authorizations: found %d",
		e.Role,
		e.Count,
	)
}

type ImpossibleAuthorityError struct {
	Role string
}

func (e ImpossibleAuthorityError) Error() string {
	return fmt.Sprintf(
		"%s authority threshold cannot be satisfied",
		e.Role,
	)
}

type VoteTallyMismatchError struct {
	MissingWitnesses uint16
	MissingCommittee uint16
}

func (e VoteTallyMismatchError) Error() string {
	return fmt.Sprintf(
		"may not specify fewer witnesses or committee members than the number voted for: missing %d witness and %d committee votes",
		e.MissingWitnesses,
		e.MissingCommittee,
	)
}

type NoOpUpdateError struct{}

func (NoOpUpdateError) Error() string {
	return "update must change at least one of owner, active or options"
}

type ReservedAccountError struct {
	Account common.AccountId
}

func (e ReservedAccountError) Error() string {
	return fmt.Sprintf(
		"operation may not target reserved account %s",
		e.Account,
	)
}

type VoteCommitteeSizeOnCreateError struct{}

func (VoteCommitteeSizeOnCreateError) Error() string {
	return "committee-size bounds may not be set at account creation"
}

type InvalidCommitteeBoundsError struct {
	MinCommitteeSize *uint16
	MaxCommitteeSize *uint16
}

func (e InvalidCommitteeBoundsError) Error() string {
	renderBound := func(b *uint16) string {
		if b == nil {
			return "unset"
		}
		return fmt.Sprintf("%d", *b)
	}
	return fmt.Sprintf(
		"committee-size bounds must be positive and ordered: min %s, max %s",
		renderBound(e.MinCommitteeSize),
		renderBound(e.MaxCommitteeSize),
	)
}
