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
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Code 返回给定错误对应的错误码。
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch specificErr := cause.(type) {
	case zeusError:
		return specificErr.code()

	default:
		if errors.Is(specificErr, context.Canceled) {
			return CanceledCode
		} else if errors.Is(specificErr, context.DeadlineExceeded) {
			return TimeoutCode
		} else {
			return errUnexpected.code()
		}
	}
}

func IsRetryableErr(err error) bool {
	if err, ok := err.(zeusError); ok {
		return err.retriable
	}

	return false
}

func IsCanceledOrTimeout(err error) bool {
	return errors.IsAny(err, context.Canceled, context.DeadlineExceeded)
}

// GetErrorType 返回给定错误的类别（系统错误/输入错误）。
func GetErrorType(err error) ErrorType {
	cause := errors.Cause(err)
	if cause, ok := cause.(zeusError); ok {
		return cause.errType
	}
	return SystemError
}

// WrapErrParameterInvalid 构造参数非法错误，附带期望值与实际值。
func WrapErrParameterInvalid[T any](expected, actual T, msg ...string) error {
	err := wrapFields(ErrParameterInvalid,
		value("expected", expected),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// WrapErrParameterInvalidMsg 构造带格式化说明的参数非法错误。
func WrapErrParameterInvalidMsg(fmtStr string, args ...any) error {
	return errors.Wrapf(ErrParameterInvalid, fmtStr, args...)
}

func WrapErrIoFailed(path string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(ErrIoFailed, "path=%s, err=%v", path, err)
}

// WrapErrBufferUnderflow 构造缓冲区下溢错误，附带本次读取需要的
// 字节数与剩余可读字节数。
func WrapErrBufferUnderflow(need, remaining int, msg ...string) error {
	err := wrapFields(ErrBufferUnderflow,
		value("need", need),
		value("remaining", remaining),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// WrapErrArraySizeMismatch 构造定长序列长度不匹配错误。
func WrapErrArraySizeMismatch(expected, actual int, msg ...string) error {
	err := wrapFields(ErrArraySizeMismatch,
		value("expected", expected),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// WrapErrLengthLimitExceeded 构造声明长度超限错误。
func WrapErrLengthLimitExceeded(declared, limit uint64, msg ...string) error {
	err := wrapFields(ErrLengthLimitExceeded,
		value("declared", declared),
		value("limit", limit),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrConfigInvalid(key string, val string, msg ...string) error {
	err := wrapFields(ErrConfigInvalid,
		value("key", key),
		value("value", val),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func wrapFields(err zeusError, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.detail = err.msg
	return err
}

type errorField interface {
	String() string
}

type valueField struct {
	name  string
	value any
}

func value(name string, value any) valueField {
	return valueField{
		name,
		value,
	}
}

func (f valueField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}
