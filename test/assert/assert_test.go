/*
 * Copyright 2025 The PlanX Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package assert

import (
	"errors"
	"testing"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name       string
		msgAndArgs []interface{}
		want       string
	}{
		{"empty", nil, ""},
		{"format", []interface{}{"%s: %v", "roof plan", []string{"valid"}}, "\nroof plan: [valid]"},
		{"type directive", []interface{}{"got %T", errors.New("x")}, "\ngot *errors.errorString"},
		{"plain string kept verbatim", []interface{}{"100% done"}, "\n100% done"},
		{"not a string", []interface{}{42}, "\n42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := message(tt.msgAndArgs...); got != tt.want {
				t.Errorf("message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjectsAreEqual(t *testing.T) {
	True(t, ObjectsAreEqual([]byte("a"), []byte("a")))
	False(t, ObjectsAreEqual([]byte("a"), "a"))
	True(t, ObjectsAreEqual(nil, nil))
	False(t, ObjectsAreEqual(nil, 0))
	True(t, isNil([]string(nil)))
	False(t, isNil(0))
}
