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

package common

import (
	"fmt"
)

// VoteType identifies what kind of object a vote identifier refers to
type VoteType uint8

const (
	VoteTypeCommittee VoteType = 0
	VoteTypeWitness   VoteType = 1
	VoteTypeWorker    VoteType = 2
)

func (t VoteType) String() string {
	switch t {
	case VoteTypeCommittee:
		return "committee"
	case VoteTypeWitness:
		return "witness"
	case VoteTypeWorker:
		return "worker"
	default:
		return fmt.Sprintf("unknown (%d)", uint8(t))
	}
}

// VoteId packs a vote type and an instance number into 32 bits: the low 8
// bits carry the type and the high 24 bits carry the instance
type VoteId uint32

const maxVoteInstance = 0xffffff

// NewVoteId builds a VoteId from a type and instance number. Instances
// above the 24-bit maximum are truncated by the mask, matching the wire
// representation.
func NewVoteId(voteType VoteType, instance uint32) VoteId {
	return VoteId(uint32(voteType) | (instance&maxVoteInstance)<<8)
}

func (v VoteId) Type() VoteType {
	return VoteType(uint32(v) & 0xff)
}

func (v VoteId) Instance() uint32 {
	return uint32(v) >> 8
}

func (v VoteId) String() string {
	return fmt.Sprintf("%d:%d", uint8(v.Type()), v.Instance())
}
