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

package account_test

import (
	"testing"

	"github.com/quartzlabs-io/gographene/cbor"
	"github.com/quartzlabs-io/gographene/ledger/account"
	"github.com/quartzlabs-io/gographene/ledger/common"

	"github.com/stretchr/testify/assert"
)

func uint16Ptr(v uint16) *uint16 {
	return &v
}

func TestCreateOptionsExtensionRules(t *testing.T) {
	t.Run("vote committee size rejected", func(t *testing.T) {
		err := account.CreateOptionsExtensionRules.Validate(
			[]common.Extension{
				account.VoteCommitteeSizeExtension{
					Type:             account.OptionsExtensionTypeVoteCommitteeSize,
					MinCommitteeSize: 1,
					MaxCommitteeSize: 5,
				},
			},
		)
		var extErr account.VoteCommitteeSizeOnCreateError
		assert.ErrorAs(t, err, &extErr)
	})
	t.Run("unknown tag rejected", func(t *testing.T) {
		err := account.CreateOptionsExtensionRules.Validate(
			[]common.Extension{
				account.UnknownExtension{Type: 99},
			},
		)
		var extErr common.UnrecognizedExtensionError
		if assert.ErrorAs(t, err, &extErr) {
			assert.Equal(t, uint(99), extErr.ExtensionType)
		}
	})
	t.Run("empty extension list accepted", func(t *testing.T) {
		assert.NoError(t, account.CreateOptionsExtensionRules.Validate(nil))
	})
}

func TestUpdateOptionsExtensionRules(t *testing.T) {
	t.Run("vote committee size accepted", func(t *testing.T) {
		err := account.UpdateOptionsExtensionRules.Validate(
			[]common.Extension{
				account.VoteCommitteeSizeExtension{
					Type:             account.OptionsExtensionTypeVoteCommitteeSize,
					MinCommitteeSize: 1,
					MaxCommitteeSize: 5,
				},
			},
		)
		assert.NoError(t, err)
	})
	t.Run("unknown tag accepted as no-op", func(t *testing.T) {
		err := account.UpdateOptionsExtensionRules.Validate(
			[]common.Extension{
				account.UnknownExtension{Type: 99},
			},
		)
		assert.NoError(t, err)
	})
}

func TestUpdateOperationExtensionRules(t *testing.T) {
	testDefs := []struct {
		name        string
		ext         common.Extension
		expectError bool
	}{
		{
			name: "create committee valid",
			ext: account.CreateCommitteeExtension{
				Type:             account.UpdateExtensionTypeCreateCommittee,
				MinCommitteeSize: 2,
				MaxCommitteeSize: 5,
			},
		},
		{
			name: "create committee zero min",
			ext: account.CreateCommitteeExtension{
				Type:             account.UpdateExtensionTypeCreateCommittee,
				MaxCommitteeSize: 5,
			},
			expectError: true,
		},
		{
			name: "create committee zero max",
			ext: account.CreateCommitteeExtension{
				Type:             account.UpdateExtensionTypeCreateCommittee,
				MinCommitteeSize: 2,
			},
			expectError: true,
		},
		{
			name: "create committee min above max",
			ext: account.CreateCommitteeExtension{
				Type:             account.UpdateExtensionTypeCreateCommittee,
				MinCommitteeSize: 6,
				MaxCommitteeSize: 5,
			},
			expectError: true,
		},
		{
			name: "update committee both absent",
			ext: account.UpdateCommitteeExtension{
				Type: account.UpdateExtensionTypeUpdateCommittee,
			},
		},
		{
			name: "update committee min only",
			ext: account.UpdateCommitteeExtension{
				Type:             account.UpdateExtensionTypeUpdateCommittee,
				MinCommitteeSize: uint16Ptr(3),
			},
		},
		{
			name: "update committee max only",
			ext: account.UpdateCommitteeExtension{
				Type:             account.UpdateExtensionTypeUpdateCommittee,
				MaxCommitteeSize: uint16Ptr(3),
			},
		},
		{
			name: "update committee zero min",
			ext: account.UpdateCommitteeExtension{
				Type:             account.UpdateExtensionTypeUpdateCommittee,
				MinCommitteeSize: uint16Ptr(0),
			},
			expectError: true,
		},
		{
			name: "update committee zero max",
			ext: account.UpdateCommitteeExtension{
				Type:             account.UpdateExtensionTypeUpdateCommittee,
				MaxCommitteeSize: uint16Ptr(0),
			},
			expectError: true,
		},
		{
			name: "update committee min above max",
			ext: account.UpdateCommitteeExtension{
				Type:             account.UpdateExtensionTypeUpdateCommittee,
				MinCommitteeSize: uint16Ptr(6),
				MaxCommitteeSize: uint16Ptr(5),
			},
			expectError: true,
		},
		{
			name:        "unknown tag rejected",
			ext:         account.UnknownExtension{Type: 42},
			expectError: true,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			err := account.UpdateOperationExtensionRules.Validate(
				[]common.Extension{testDef.ext},
			)
			if testDef.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateExtensionWrapperRoundTrip(t *testing.T) {
	wrapper := account.UpdateExtensionWrapper{
		Type: account.UpdateExtensionTypeCreateCommittee,
		Extension: account.CreateCommitteeExtension{
			Type:             account.UpdateExtensionTypeCreateCommittee,
			MinCommitteeSize: 2,
			MaxCommitteeSize: 5,
		},
	}
	cborData, err := cbor.Encode(&wrapper)
	if err != nil {
		t.Fatalf("failed to encode extension wrapper: %s", err)
	}
	var decoded account.UpdateExtensionWrapper
	if _, err := cbor.Decode(cborData, &decoded); err != nil {
		t.Fatalf("failed to decode extension wrapper: %s", err)
	}
	assert.Equal(t, account.UpdateExtensionTypeCreateCommittee, decoded.Type)
	ext, ok := decoded.Extension.(account.CreateCommitteeExtension)
	if !ok {
		t.Fatalf(
			"decoded extension is not expected type: %T",
			decoded.Extension,
		)
	}
	assert.Equal(t, uint16(2), ext.MinCommitteeSize)
	assert.Equal(t, uint16(5), ext.MaxCommitteeSize)
}

func TestOptionsExtensionWrapperUnknownTag(t *testing.T) {
	// A future extension tag with a payload this version has never seen
	futureExt := []any{uint64(99), "future payload"}
	cborData, err := cbor.Encode(futureExt)
	if err != nil {
		t.Fatalf("failed to encode test extension: %s", err)
	}
	var decoded account.OptionsExtensionWrapper
	if _, err := cbor.Decode(cborData, &decoded); err != nil {
		t.Fatalf("failed to decode extension wrapper: %s", err)
	}
	assert.Equal(t, uint(99), decoded.Type)
	ext, ok := decoded.Extension.(account.UnknownExtension)
	if !ok {
		t.Fatalf(
			"decoded extension is not expected type: %T",
			decoded.Extension,
		)
	}
	assert.Equal(t, uint(99), ext.ExtensionType())
	// Re-encoding preserves the original bytes
	reencoded, err := cbor.Encode(&decoded)
	if err != nil {
		t.Fatalf("failed to re-encode extension wrapper: %s", err)
	}
	assert.Equal(t, cborData, reencoded)
}
