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

	"github.com/fastparse/fastparse/view"
)

// Chain 串联若干解析步骤并在首次失败后短路
//
// Chain 为值类型 每个步骤返回新的 Chain 失败后续步骤不再触碰 Scanner
// result 冻结为最近一次成功解析所得的窗口 初始为空
//
//	c := scanner.NewChain(s).SkipWS().ExpectChar('{').ParseString()
//	if c.OK() {
//	    key := c.Result()
//	}
type Chain struct {
	s      *Scanner
	ok     bool
	result view.View
}

// NewChain 以成功状态开启一条解析链
func NewChain(s *Scanner) Chain {
	return Chain{s: s, ok: true}
}

// SkipWS 跳过空白 该步骤自身永不失败
func (c Chain) SkipWS() Chain {
	if c.ok {
		c.s.SkipWhitespace()
	}
	return c
}

// ExpectChar 要求游标处为指定字节 不匹配时以 Custom 码记录失败
func (c Chain) ExpectChar(expected byte) Chain {
	if c.ok {
		c.ok = c.s.MatchChar(expected)
		if !c.ok {
			c.s.SetError(CodeCustom, fmt.Sprintf("expected '%c'", expected))
		}
	}
	return c
}

// ParseString 解析一个引号字符串并将结果存入链中
func (c Chain) ParseString() Chain {
	if c.ok {
		var result view.View
		result, c.ok = c.s.ParseQuotedString()
		if c.ok {
			c.result = result
		}
	}
	return c
}

// OK 返回链当前是否仍处于成功状态
func (c Chain) OK() bool {
	return c.ok
}

// Result 返回最近一次成功解析的窗口 从未成功过时为空
func (c Chain) Result() view.View {
	return c.result
}
