/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package adapter

import (
	"errors"
	"testing"

	"dirpx.dev/serrors"
	"dirpx.dev/serrors/reason"
	"github.com/stretchr/testify/assert"
)

func TestDescribeStructuredError(t *testing.T) {
	err := serrors.OweNet[reason.Universal](errors.New("connection refused"))

	d := Describe(err)
	assert.Equal(t, 202, d.Code)
	assert.True(t, d.Retryable)
	assert.False(t, d.HighSeverity)
	assert.Contains(t, d.Message, "network error")
}

func TestDescribePlainError(t *testing.T) {
	d := Describe(errors.New("boom"))
	assert.Equal(t, 500, d.Code)
	assert.Equal(t, "boom", d.Message)
	assert.False(t, d.Retryable)
	assert.False(t, d.HighSeverity)
}

func TestDescribeNil(t *testing.T) {
	assert.Zero(t, Describe(nil))
}

func TestViewStructuredError(t *testing.T) {
	err := serrors.New(reason.Validation("age must be positive")).WithDetail("got -3")

	v := View(err)
	assert.Equal(t, 100, v.Code)
	assert.Equal(t, "validation error << age must be positive", v.Reason)
	assert.Equal(t, "got -3", v.Detail)
}

func TestViewPlainError(t *testing.T) {
	v := View(errors.New("boom"))
	assert.Equal(t, 500, v.Code)
	assert.Equal(t, "boom", v.Detail)
	assert.Empty(t, v.Reason)
}
