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

	"github.com/quartzlabs-io/gographene/cbor"
	"github.com/quartzlabs-io/gographene/ledger/common"
)

// Extension tags recognized in account options
const (
	OptionsExtensionTypeVoteCommitteeSize uint = 1
)

// Extension tags recognized at the top level of an update operation
const (
	UpdateExtensionTypeCreateCommittee uint = 1
	UpdateExtensionTypeUpdateCommittee uint = 2
)

// VoteCommitteeSizeExtension carries committee-size bounds attached to
// account options
type VoteCommitteeSizeExtension struct {
	cbor.StructAsArray
	Type             uint
	MinCommitteeSize uint16
	MaxCommitteeSize uint16
}

func (e VoteCommitteeSizeExtension) ExtensionType() uint {
	return OptionsExtensionTypeVoteCommitteeSize
}

// CreateCommitteeExtension requests committee creation with mandatory size
// bounds
type CreateCommitteeExtension struct {
	cbor.StructAsArray
	Type             uint
	MinCommitteeSize uint16
	MaxCommitteeSize uint16
}

func (e CreateCommitteeExtension) ExtensionType() uint {
	return UpdateExtensionTypeCreateCommittee
}

// UpdateCommitteeExtension updates committee size bounds; either bound may
// be absent
type UpdateCommitteeExtension struct {
	cbor.StructAsArray
	Type             uint
	MinCommitteeSize *uint16
	MaxCommitteeSize *uint16
}

func (e UpdateCommitteeExtension) ExtensionType() uint {
	return UpdateExtensionTypeUpdateCommittee
}

// UnknownExtension preserves an extension tag this version does not
// recognize, along with its raw payload. Whether it is acceptable is
// decided by the rule set of the call site, not at decode time.
type UnknownExtension struct {
	Type uint
	Cbor []byte
}

func (e UnknownExtension) ExtensionType() uint {
	return e.Type
}

// OptionsExtensionWrapper provides a wrapper for the account-options
// extension union to allow tag-based decoding
type OptionsExtensionWrapper struct {
	Type      uint
	Extension common.Extension
}

func (w *OptionsExtensionWrapper) UnmarshalCBOR(data []byte) error {
	// Determine extension tag
	extType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	var tmpExt common.Extension
	switch uint(extType) { //nolint:gosec
	case OptionsExtensionTypeVoteCommitteeSize:
		ext := VoteCommitteeSizeExtension{}
		if _, err := cbor.Decode(data, &ext); err != nil {
			return err
		}
		tmpExt = ext
	default:
		// Unknown tags are preserved rather than rejected here so that
		// call sites with an accept-unknown policy can pass them through
		tmpExt = UnknownExtension{
			Type: uint(extType), //nolint:gosec
			Cbor: append([]byte(nil), data...),
		}
	}
	w.Type = uint(extType) //nolint:gosec
	w.Extension = tmpExt
	return nil
}

func (w *OptionsExtensionWrapper) MarshalCBOR() ([]byte, error) {
	if tmpExt, ok := w.Extension.(UnknownExtension); ok {
		return tmpExt.Cbor, nil
	}
	return cbor.Encode(w.Extension)
}

// UpdateExtensionWrapper provides a wrapper for the update-operation
// extension union to allow tag-based decoding
type UpdateExtensionWrapper struct {
	Type      uint
	Extension common.Extension
}

func (w *UpdateExtensionWrapper) UnmarshalCBOR(data []byte) error {
	// Determine extension tag
	extType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	var tmpExt common.Extension
	switch uint(extType) { //nolint:gosec
	case UpdateExtensionTypeCreateCommittee:
		ext := CreateCommitteeExtension{}
		if _, err := cbor.Decode(data, &ext); err != nil {
			return err
		}
		tmpExt = ext
	case UpdateExtensionTypeUpdateCommittee:
		ext := UpdateCommitteeExtension{}
		if _, err := cbor.Decode(data, &ext); err != nil {
			return err
		}
		tmpExt = ext
	default:
		tmpExt = UnknownExtension{
			Type: uint(extType), //nolint:gosec
			Cbor: append([]byte(nil), data...),
		}
	}
	w.Type = uint(extType) //nolint:gosec
	w.Extension = tmpExt
	return nil
}

func (w *UpdateExtensionWrapper) MarshalCBOR() ([]byte, error) {
	if tmpExt, ok := w.Extension.(UnknownExtension); ok {
		return tmpExt.Cbor, nil
	}
	return cbor.Encode(w.Extension)
}

// CreateOptionsExtensionRules is the rule set applied to options
// extensions of a create operation. Committee-size bounds may not be set
// at creation, and no unrecognized tag is acceptable: a create operation
// this version cannot fully validate is rejected.
var CreateOptionsExtensionRules = common.ExtensionRuleSet{
	Rules: map[uint]common.ExtensionRuleFunc{
		OptionsExtensionTypeVoteCommitteeSize: rejectVoteCommitteeSizeOnCreate,
	},
	Default: common.ExtensionPolicyReject,
}

// UpdateOptionsExtensionRules is the rule set applied to extensions of an
// update operation's new options. Unrecognized tags pass through as no-ops
// so that options written by newer protocol versions stay updatable.
var UpdateOptionsExtensionRules = common.ExtensionRuleSet{
	Rules: map[uint]common.ExtensionRuleFunc{
		OptionsExtensionTypeVoteCommitteeSize: acceptVoteCommitteeSizeOnUpdate,
	},
	Default: common.ExtensionPolicyAccept,
}

// UpdateOperationExtensionRules is the rule set applied to the top-level
// extension sequence of an update operation. Unrecognized tags are
// rejected, matching the create-operation policy.
var UpdateOperationExtensionRules = common.ExtensionRuleSet{
	Rules: map[uint]common.ExtensionRuleFunc{
		UpdateExtensionTypeCreateCommittee: validateCreateCommitteeExtension,
		UpdateExtensionTypeUpdateCommittee: validateUpdateCommitteeExtension,
	},
	Default: common.ExtensionPolicyReject,
}

func rejectVoteCommitteeSizeOnCreate(ext common.Extension) error {
	return VoteCommitteeSizeOnCreateError{}
}

func acceptVoteCommitteeSizeOnUpdate(ext common.Extension) error {
	// TODO: validate committee-size bounds once the committee object
	// constraints are finalized
	return nil
}

func validateCreateCommitteeExtension(ext common.Extension) error {
	tmpExt, ok := ext.(CreateCommitteeExtension)
	if !ok {
		return errors.New("extension is not expected type")
	}
	if tmpExt.MinCommitteeSize == 0 || tmpExt.MaxCommitteeSize == 0 ||
		tmpExt.MinCommitteeSize > tmpExt.MaxCommitteeSize {
		return InvalidCommitteeBoundsError{
			MinCommitteeSize: &tmpExt.MinCommitteeSize,
			MaxCommitteeSize: &tmpExt.MaxCommitteeSize,
		}
	}
	return nil
}

func validateUpdateCommitteeExtension(ext common.Extension) error {
	tmpExt, ok := ext.(UpdateCommitteeExtension)
	if !ok {
		return errors.New("extension is not expected type")
	}
	if tmpExt.MinCommitteeSize != nil && *tmpExt.MinCommitteeSize == 0 {
		return InvalidCommitteeBoundsError{
			MinCommitteeSize: tmpExt.MinCommitteeSize,
			MaxCommitteeSize: tmpExt.MaxCommitteeSize,
		}
	}
	if tmpExt.MaxCommitteeSize != nil && *tmpExt.MaxCommitteeSize == 0 {
		return InvalidCommitteeBoundsError{
			MinCommitteeSize: tmpExt.MinCommitteeSize,
			MaxCommitteeSize: tmpExt.MaxCommitteeSize,
		}
	}
	if tmpExt.MinCommitteeSize != nil && tmpExt.MaxCommitteeSize != nil &&
		*tmpExt.MinCommitteeSize > *tmpExt.MaxCommitteeSize {
		return InvalidCommitteeBoundsError{
			MinCommitteeSize: tmpExt.MinCommitteeSize,
			MaxCommitteeSize: tmpExt.MaxCommitteeSize,
		}
	}
	return nil
}
