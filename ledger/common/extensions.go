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

// Extension is a tagged forward-compatible payload attached to an
// operation or its options. The tag space is open-ended: validators
// recognize a fixed subset of tags and handle the rest according to the
// call site's declared default policy.
type Extension interface {
	ExtensionType() uint
}

// ExtensionPolicy declares how a call site treats extension tags it has no
// rule for
type ExtensionPolicy int

const (
	// ExtensionPolicyReject refuses to process an operation carrying a
	// tag the call site cannot fully validate
	ExtensionPolicyReject ExtensionPolicy = iota
	// ExtensionPolicyAccept lets unrecognized future tags through as
	// no-ops
	ExtensionPolicyAccept
)

// ExtensionRuleFunc validates a single known extension payload
type ExtensionRuleFunc func(ext Extension) error

// ExtensionRuleSet maps known extension tags to validation rules and
// carries an explicit default policy for every other tag. Each call site
// declares its own rule set; the defaults intentionally differ between
// call sites and must never be unified behind a shared fallthrough.
type ExtensionRuleSet struct {
	Rules   map[uint]ExtensionRuleFunc
	Default ExtensionPolicy
}

// Validate applies the rule set to a sequence of extension values,
// stopping at the first failure
func (rs ExtensionRuleSet) Validate(exts []Extension) error {
	for _, ext := range exts {
		if ext == nil {
			continue
		}
		rule, ok := rs.Rules[ext.ExtensionType()]
		if !ok {
			if rs.Default == ExtensionPolicyAccept {
				continue
			}
			return UnrecognizedExtensionError{
				ExtensionType: ext.ExtensionType(),
			}
		}
		if err := rule(ext); err != nil {
			return err
		}
	}
	return nil
}

type UnrecognizedExtensionError struct {
	ExtensionType uint
}

func (e UnrecognizedExtensionError) Error() string {
	return fmt.Sprintf(
		"unrecognized extension tag: %d",
		e.ExtensionType,
	)
}
