// Copyright 2025 The fastparse Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scanner

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/fastparse/fastparse/internal/bufbytes"
)

// maxErrorMessage 错误信息的长度上限 超出部分被截断
const maxErrorMessage = 256

// Code 标识解析失败的类别
type Code uint8

const (
	CodeNone Code = iota
	CodeEndOfInput
	CodeInvalidNumber
	CodeIntegerOverflow
	CodeInvalidEscape // 预留 当前转义序列按原样透传 不做校验
	CodeUnterminatedString
	CodeCustom
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeEndOfInput:
		return "EndOfInput"
	case CodeInvalidNumber:
		return "InvalidNumber"
	case CodeIntegerOverflow:
		return "IntegerOverflow"
	case CodeInvalidEscape:
		return "InvalidEscape"
	case CodeUnterminatedString:
		return "UnterminatedString"
	case CodeCustom:
		return "Custom"
	}
	return "Unknown"
}

func newError(format string, args ...any) error {
	format = "scanner: " + format
	return errors.Errorf(format, args...)
}

var (
	ErrEndOfInput         = newError("end of input")
	ErrInvalidNumber      = newError("invalid number")
	ErrIntegerOverflow    = newError("integer overflow")
	ErrInvalidEscape      = newError("invalid escape")
	ErrUnterminatedString = newError("unterminated string")
	ErrCustom             = newError("custom error")
)

// ScanError 记录一次解析失败的完整现场
//
// Line/Column 为错误发生时游标所在的位置 而非扫描起点
type ScanError struct {
	Code    Code
	Message string
	Line    int
	Column  int
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

// Unwrap 将错误码映射为包级哨兵错误 支持 errors.Is 判定
func (e *ScanError) Unwrap() error {
	switch e.Code {
	case CodeEndOfInput:
		return ErrEndOfInput
	case CodeInvalidNumber:
		return ErrInvalidNumber
	case CodeIntegerOverflow:
		return ErrIntegerOverflow
	case CodeInvalidEscape:
		return ErrInvalidEscape
	case CodeUnterminatedString:
		return ErrUnterminatedString
	case CodeCustom:
		return ErrCustom
	}
	return nil
}

// SetError 在粘滞错误槽中记录失败现场
//
// 槽位语义为 `最后一次失败` 后续失败会覆盖 成功的操作永远不会清除
// msg 超过 maxErrorMessage 字节的部分被截断 截断缓冲在 Scanner 内复用
func (s *Scanner) SetError(code Code, msg string) {
	if s.msgbuf == nil {
		s.msgbuf = bufbytes.New(maxErrorMessage)
	}
	s.msgbuf.Reset()
	s.msgbuf.WriteString(msg)

	s.err = &ScanError{
		Code:    code,
		Message: s.msgbuf.Text(),
		Line:    s.line,
		Column:  s.column,
	}
}

// HasError 判断错误槽是否已被写入
func (s *Scanner) HasError() bool {
	return s.err != nil
}

// Err 返回错误槽内容 未发生过失败时返回 nil
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// LastError 返回错误槽的结构化内容 未发生过失败时返回 nil
func (s *Scanner) LastError() *ScanError {
	return s.err
}
