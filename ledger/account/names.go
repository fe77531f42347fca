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

// Package account implements the admission rules for account-management
// operations: name grammar, cheap-name classification, per-operation fee
// calculation, and per-operation structural validation. Everything here is
// pure and deterministic; every validating node must reach byte-identical
// accept/reject and fee decisions for the same input.
package account

import (
	"strings"

	"github.com/quartzlabs-io/gographene/ledger/common"
)

// IsValidName reports whether a candidate account name is syntactically
// legal. Names must comply with the following grammar (RFC 1035):
//
//	<domain> ::= <subdomain> | " "
//	<subdomain> ::= <label> | <subdomain> "." <label>
//	<label> ::= <letter> [ [ <ldh-str> ] <let-dig> ]
//	<ldh-str> ::= <let-dig-hyp> | <let-dig-hyp> <ldh-str>
//	<let-dig-hyp> ::= <let-dig> | "-"
//	<let-dig> ::= <letter> | <digit>
//
// I.e. a valid name consists of a dot-separated sequence of one or more
// labels where:
//
//   - each label is three characters or more
//   - each label begins with a letter
//   - each label ends with a letter or digit
//   - each label contains only letters, digits or hyphens
//
// In addition, all letters must be lowercase ASCII and the total length
// must be between MinAccountNameLength and MaxAccountNameLength inclusive.
// Any character outside the enumerated classes, including uppercase and
// non-ASCII, fails the corresponding rule.
func IsValidName(name string) bool {
	// The scanner below implicitly enforces a minimum name length of 3
	// via the per-label minimum; MinAccountNameLength must never be
	// configured lower.
	length := len(name)
	if length < common.MinAccountNameLength {
		return false
	}
	if length > common.MaxAccountNameLength {
		return false
	}

	begin := 0
	for {
		end := strings.IndexByte(name[begin:], '.')
		if end < 0 {
			end = length
		} else {
			end += begin
		}
		if end-begin < 3 {
			return false
		}
		if !isLowerLetter(name[begin]) {
			return false
		}
		if !isLowerLetterOrDigit(name[end-1]) {
			return false
		}
		for i := begin + 1; i < end-1; i++ {
			if !isLowerLetterOrDigit(name[i]) && name[i] != '-' {
				return false
			}
		}
		if end == length {
			break
		}
		begin = end + 1
	}
	return true
}

// IsCheapName reports whether a name qualifies for the basic (rather than
// premium) registration fee. The heuristic flags low-effort names: any
// digit or any of '.', '-', '/' makes a name cheap, and so does the total
// absence of vowels ('y' counts as a vowel). This is a pricing heuristic,
// not a security boundary; its exact shape is consensus-critical and must
// not be "fixed".
func IsCheapName(name string) bool {
	hasVowel := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= '0' && c <= '9' {
			return true
		}
		if c == '.' || c == '-' || c == '/' {
			return true
		}
		switch c {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			hasVowel = true
		}
	}
	return !hasVowel
}

func isLowerLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isLowerLetterOrDigit(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
