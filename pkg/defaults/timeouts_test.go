// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Handler timeouts
		{"FoodHandlerTimeout", FoodHandlerTimeout, 5 * time.Second, 60 * time.Second},
		{"ReadinessCheckTimeout", ReadinessCheckTimeout, 500 * time.Millisecond, 10 * time.Second},

		// Store timeouts
		{"StoreConnectTimeout", StoreConnectTimeout, 1 * time.Second, 60 * time.Second},
		{"StoreOperationTimeout", StoreOperationTimeout, 1 * time.Second, 30 * time.Second},
		{"StoreDisconnectTimeout", StoreDisconnectTimeout, 1 * time.Second, 30 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 15 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestStoreTimeoutLessThanHandler(t *testing.T) {
	// A store call must time out before the handler does so the handler can
	// still write a classified error response.
	if StoreOperationTimeout >= FoodHandlerTimeout {
		t.Errorf("StoreOperationTimeout (%v) should be less than FoodHandlerTimeout (%v)",
			StoreOperationTimeout, FoodHandlerTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadHeaderTimeout > ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should not exceed ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}

	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	if ServerWriteTimeout > ServerIdleTimeout {
		t.Errorf("ServerWriteTimeout (%v) should not exceed ServerIdleTimeout (%v)",
			ServerWriteTimeout, ServerIdleTimeout)
	}
}

func TestServerLimits(t *testing.T) {
	if ServerRateLimitBurst < ServerRateLimit {
		t.Errorf("ServerRateLimitBurst (%d) should be at least ServerRateLimit (%d)",
			ServerRateLimitBurst, ServerRateLimit)
	}
	if MaxRequestBodyBytes <= 0 {
		t.Error("MaxRequestBodyBytes must be positive")
	}
}
