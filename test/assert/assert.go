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

// Package assert provides the small set of assertions used across the tests.
package assert

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// Equal asserts that expected and actual are deeply equal.
func Equal(t testing.TB, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !ObjectsAreEqual(expected, actual) {
		t.Errorf("Not equal: \nexpected: %#v\nactual  : %#v%s", expected, actual, message(msgAndArgs...))
	}
}

// NotEqual asserts that expected and actual are not deeply equal.
func NotEqual(t testing.TB, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if ObjectsAreEqual(expected, actual) {
		t.Errorf("Should not be: %#v%s", actual, message(msgAndArgs...))
	}
}

// EqualCleanString asserts that two strings are equal once all whitespace is removed.
func EqualCleanString(t testing.TB, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()
	Equal(t, clean(expected), clean(actual), msgAndArgs...)
}

// Nil asserts that object is nil.
func Nil(t testing.TB, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(object) {
		t.Errorf("Expected nil, but got: %#v%s", object, message(msgAndArgs...))
	}
}

// NotNil asserts that object is not nil.
func NotNil(t testing.TB, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(object) {
		t.Errorf("Expected value not to be nil%s", message(msgAndArgs...))
	}
}

// NoError asserts that err is nil.
func NoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Errorf("Received unexpected error: %v%s", err, message(msgAndArgs...))
	}
}

// EqualError asserts that err is not nil and its message equals errString.
func EqualError(t testing.TB, err error, errString string, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		t.Errorf("An error is expected but got nil%s", message(msgAndArgs...))
		return
	}
	if err.Error() != errString {
		t.Errorf("Error message not equal:\nexpected: %q\nactual  : %q%s", errString, err.Error(), message(msgAndArgs...))
	}
}

// True asserts that value is true.
func True(t testing.TB, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !value {
		t.Errorf("Should be true%s", message(msgAndArgs...))
	}
}

// False asserts that value is false.
func False(t testing.TB, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if value {
		t.Errorf("Should be false%s", message(msgAndArgs...))
	}
}

// Fail reports a failure.
func Fail(t testing.TB, failureMessage string, msgAndArgs ...interface{}) {
	t.Helper()
	t.Errorf("%s%s", failureMessage, message(msgAndArgs...))
}

// ObjectsAreEqual reports whether expected and actual are deeply equal.
// []byte values are compared by content.
func ObjectsAreEqual(expected, actual interface{}) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}
	exp, ok := expected.([]byte)
	if !ok {
		return reflect.DeepEqual(expected, actual)
	}
	act, ok := actual.([]byte)
	if !ok {
		return false
	}
	return string(exp) == string(act)
}

func isNil(object interface{}) bool {
	if object == nil {
		return true
	}
	value := reflect.ValueOf(object)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return value.IsNil()
	}
	return false
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// message formats the optional trailing arguments of an assertion. The first
// one is a format string when it is a string and more arguments follow.
func message(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	msg := msgAndArgs[0]
	format, ok := msg.(string)
	if !ok {
		return "\n" + fmt.Sprintf("%+v", msg)
	}
	if len(msgAndArgs) == 1 {
		return "\n" + format
	}
	return "\n" + fmt.Sprintf(format, msgAndArgs[1:]...)
}
