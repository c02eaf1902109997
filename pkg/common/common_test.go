// Copyright 2024 The SafeCalc Authors
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

import "testing"

func TestSetDebugLevel(t *testing.T) {
	defer SetDebugLevel(DbgLvlNone)

	SetDebugLevel(DbgLvlDebug2)
	if got := GetDebugLevel(); got != DbgLvlDebug2 {
		t.Errorf("GetDebugLevel() = %v, want %v", got, DbgLvlDebug2)
	}
}

func TestSetDebugLevelFromString(t *testing.T) {
	defer SetDebugLevel(DbgLvlNone)

	tests := []struct {
		input    string
		expected DbgLevel
	}{
		{"info", DbgLvlNone},
		{"debug", DbgLvlDebug},
		{"debug1", DbgLvlDebug},
		{"debug2", DbgLvlDebug2},
		{"debug3", DbgLvlDebug3},
		{"  DEBUG2  ", DbgLvlDebug2},
		{"bogus", DbgLvlNone},
		{"", DbgLvlNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			SetDebugLevelFromString(tt.input)
			if got := GetDebugLevel(); got != tt.expected {
				t.Errorf("SetDebugLevelFromString(%q): level = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
