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

// MockAuthority is a shared test helper implementing the Authority
// contract. This file is intentionally non-_test.go so other package tests
// can import it.
type MockAuthority struct {
	Auths        uint32
	AddressAuths uint32
	Impossible   bool
}

func (m MockAuthority) NumAuths() uint32 {
	return m.Auths
}

func (m MockAuthority) AddressAuthsCount() uint32 {
	return m.AddressAuths
}

func (m MockAuthority) IsImpossible() bool {
	return m.Impossible
}
