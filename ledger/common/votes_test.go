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
	"testing"

	"github.com/quartzlabs-io/gographene/ledger/common"
)

func TestVoteIdPacking(t *testing.T) {
	testDefs := []struct {
		voteType common.VoteType
		instance uint32
	}{
		{voteType: common.VoteTypeCommittee, instance: 0},
		{voteType: common.VoteTypeWitness, instance: 1},
		{voteType: common.VoteTypeWorker, instance: 12345},
		{voteType: common.VoteTypeWitness, instance: 0xffffff},
	}
	for _, testDef := range testDefs {
		id := common.NewVoteId(testDef.voteType, testDef.instance)
		if id.Type() != testDef.voteType {
			t.Errorf(
				"vote ID %s did not round-trip type: got %s, wanted %s",
				id,
				id.Type(),
				testDef.voteType,
			)
		}
		if id.Instance() != testDef.instance {
			t.Errorf(
				"vote ID %s did not round-trip instance: got %d, wanted %d",
				id,
				id.Instance(),
				testDef.instance,
			)
		}
	}
}

func TestVoteIdInstanceTruncation(t *testing.T) {
	// Instances are 24-bit on the wire; higher bits are masked off
	id := common.NewVoteId(common.VoteTypeWitness, 0x01ffffff)
	if id.Instance() != 0xffffff {
		t.Errorf(
			"did not get expected truncated instance: got %d, wanted %d",
			id.Instance(),
			0xffffff,
		)
	}
}
