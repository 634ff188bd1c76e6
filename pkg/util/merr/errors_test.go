// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merr

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"
)

type ErrSuite struct {
	suite.Suite
}

func (s *ErrSuite) TestCode() {
	err := WrapErrBufferUnderflow(8, 4)
	errors.Wrap(err, "failed to read uint64")
	s.ErrorIs(err, ErrBufferUnderflow)
	s.Equal(Code(ErrBufferUnderflow), Code(err))
	s.Equal(TimeoutCode, Code(context.DeadlineExceeded))
	s.Equal(CanceledCode, Code(context.Canceled))
	s.Equal(errUnexpected.errCode, Code(errUnexpected))

	sameCodeErr := newZeusError("new error", ErrBufferUnderflow.errCode, false)
	s.True(sameCodeErr.Is(ErrBufferUnderflow))
}

func (s *ErrSuite) TestWrap() {
	s.ErrorIs(WrapErrBufferUnderflow(4, 0, "read length prefix"), ErrBufferUnderflow)
	s.ErrorIs(WrapErrArraySizeMismatch(3, 5), ErrArraySizeMismatch)
	s.ErrorIs(WrapErrLengthLimitExceeded(0xFFFFFFFF, 1024), ErrLengthLimitExceeded)
	s.ErrorIs(WrapErrParameterInvalid("little|big|native", "middle"), ErrParameterInvalid)
	s.ErrorIs(WrapErrConfigInvalid("binser.endianness", "middle"), ErrConfigInvalid)
	s.NoError(WrapErrIoFailed("config.yaml", nil))
}

func (s *ErrSuite) TestErrorType() {
	s.Equal(InputError, GetErrorType(ErrBufferUnderflow))
	s.Equal(InputError, GetErrorType(WrapErrArraySizeMismatch(3, 5)))
	s.Equal(SystemError, GetErrorType(ErrIoFailed))
	s.Equal(SystemError, GetErrorType(errors.New("opaque")))
	s.Equal("input_error", InputError.String())
}

func (s *ErrSuite) TestCombine() {
	var (
		errFirst  = errors.New("first")
		errSecond = errors.New("second")
		errThird  = errors.New("third")
	)

	err := Combine(errFirst, errSecond)
	s.True(errors.Is(err, errFirst))
	s.True(errors.Is(err, errSecond))
	s.False(errors.Is(err, errThird))

	s.Equal("first: second", err.Error())
}

func (s *ErrSuite) TestCombineWithNil() {
	err := errors.New("non-nil")

	s.Error(Combine(nil, err))
	s.Error(Combine(err, nil))
	s.NoError(Combine(nil, nil))
}

func (s *ErrSuite) TestIsRetryable() {
	s.False(IsRetryableErr(ErrBufferUnderflow))
	s.False(IsRetryableErr(ErrArraySizeMismatch))
	s.True(IsRetryableErr(newZeusError("retriable", 9999, true)))
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrSuite))
}
