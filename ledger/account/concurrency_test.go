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
	"sync"
	"testing"

	"github.com/quartzlabs-io/gographene/ledger/account"

	"go.uber.org/goleak"
)

// Validation and fee calculation are pure: many operations may be checked
// concurrently with no coordination. This exercises that claim under the
// race detector and verifies no goroutines are left behind.
func TestConcurrentValidation(t *testing.T) {
	defer goleak.VerifyNone(t)
	testParams := account.AccountCreateFeeParameters{
		BasicFee:      5000,
		PremiumFee:    200000,
		PricePerKbyte: 1024,
	}
	op := testCreateOp()
	expectedFee, err := op.CalculateFee(testParams)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if err := op.Validate(); err != nil {
					t.Errorf("unexpected validation error: %s", err)
					return
				}
				fee, err := op.CalculateFee(testParams)
				if err != nil {
					t.Errorf("unexpected fee error: %s", err)
					return
				}
				if fee != expectedFee {
					t.Errorf(
						"fee calculation was not deterministic: got %d, wanted %d",
						fee,
						expectedFee,
					)
					return
				}
			}
		}()
	}
	wg.Wait()
}
