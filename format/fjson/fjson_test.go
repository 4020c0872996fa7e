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

package fjson

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/scanner"
)

func TestSkipValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		rest  string
	}{
		{
			name:  "Object",
			input: `{"name":"John","age":32,"tags":["a","b"]}`,
			ok:    true,
		},
		{
			name:  "Nested with whitespace",
			input: ` { "a" : [ 1 , { "b" : null } ] } `,
			ok:    true,
			rest:  " ",
		},
		{
			name:  "Empty object",
			input: "{}",
			ok:    true,
		},
		{
			name:  "Empty array",
			input: "[  ]",
			ok:    true,
		},
		{
			name:  "Array",
			input: "[1,2,3] tail",
			ok:    true,
			rest:  " tail",
		},
		{
			name:  "String",
			input: `"hello \"world\""`,
			ok:    true,
		},
		{
			name:  "True",
			input: "true",
			ok:    true,
		},
		{
			name:  "False",
			input: "false",
			ok:    true,
		},
		{
			name:  "Null",
			input: "null",
			ok:    true,
		},
		{
			name:  "Number",
			input: "-3.14e2",
			ok:    true,
		},
		{
			name:  "Number stops at junk",
			input: "42abc",
			ok:    true,
			rest:  "abc",
		},
		{
			name:  "Missing object value",
			input: `{"a":}`,
			rest:  "}",
		},
		{
			name:  "Missing colon",
			input: `{"a" 1}`,
			rest:  "1}",
		},
		{
			name:  "Unclosed array",
			input: "[1,2",
		},
		{
			name:  "Misspelled literal",
			input: "tru",
			rest:  "tru",
		},
		{
			name:  "Unknown leading byte",
			input: "xyz",
			rest:  "xyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scanner.NewString(tt.input)
			assert.Equal(t, tt.ok, SkipValue(s))
			assert.Equal(t, tt.rest, s.Rest().String())
		})
	}
}

// TestSkipValueErrorClasses 结构性缺失只返回 false 底层解析失败才写错误槽
func TestSkipValueErrorClasses(t *testing.T) {
	t.Run("Unterminated string is sticky", func(t *testing.T) {
		s := scanner.NewString(`"abc`)
		assert.False(t, SkipValue(s))
		assert.Equal(t, scanner.CodeUnterminatedString, s.LastError().Code)
	})

	t.Run("Non string key is sticky", func(t *testing.T) {
		s := scanner.NewString(`{123:1}`)
		assert.False(t, SkipValue(s))
		assert.Equal(t, scanner.CodeUnterminatedString, s.LastError().Code)
		assert.Equal(t, "expected opening quote", s.LastError().Message)
	})

	t.Run("Missing value is plain failure", func(t *testing.T) {
		s := scanner.NewString(`{"a":}`)
		assert.False(t, SkipValue(s))
		assert.False(t, s.HasError())
	})

	t.Run("Misspelled literal is plain failure", func(t *testing.T) {
		s := scanner.NewString("nul")
		assert.False(t, SkipValue(s))
		assert.False(t, s.HasError())
	})
}

func TestSkipValueMaxDepth(t *testing.T) {
	t.Run("Within limit", func(t *testing.T) {
		s := scanner.NewString("[[1]]")
		assert.True(t, skipValue(s, 3))
	})

	t.Run("Exceeds limit", func(t *testing.T) {
		s := scanner.NewString("[[1]]")
		assert.False(t, skipValue(s, 2))
		assert.Equal(t, scanner.CodeCustom, s.LastError().Code)
		assert.Equal(t, "max nesting depth exceeded", s.LastError().Message)
	})

	t.Run("Default limit", func(t *testing.T) {
		input := strings.Repeat("[", MaxDepth+1)
		s := scanner.NewString(input)
		assert.False(t, SkipValue(s))
		assert.Equal(t, scanner.CodeCustom, s.LastError().Code)
	})
}

func TestCheckerCheck(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  common.Options
		valid bool
	}{
		{
			name:  "Valid object",
			input: `{"name":"John","age":32}`,
			valid: true,
		},
		{
			name:  "Valid scalar with whitespace",
			input: "  42  ",
			valid: true,
		},
		{
			name:  "Trailing value",
			input: `{"a":1} {"b":2}`,
		},
		{
			name:  "Empty input",
			input: "",
		},
		{
			name:  "Missing value",
			input: `{"a":}`,
		},
		{
			name:  "Depth option",
			input: "[[1]]",
			opts:  common.Options{"maxDepth": 2},
		},
		{
			name:  "Depth option generous",
			input: "[[1]]",
			opts:  common.Options{"maxDepth": 3},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts)
			assert.NoError(t, err)
			assert.Equal(t, Name, c.Name())

			ret := c.Check([]byte(tt.input))
			assert.Equal(t, tt.valid, ret.Valid)
			if tt.valid {
				assert.Equal(t, 1, ret.Rows)
				assert.Nil(t, ret.Err)
			} else {
				assert.NotNil(t, ret.Err)
			}
		})
	}
}

func TestCheckerRegistered(t *testing.T) {
	for _, name := range []string{Name, LinesName} {
		f, err := format.Get(name)
		assert.NoError(t, err)

		c, err := f(nil)
		assert.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
}

func TestCheckLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		rows  int
	}{
		{
			name:  "Two documents",
			input: "{\"a\":1}\n{\"b\":2}\n",
			valid: true,
			rows:  2,
		},
		{
			name:  "Blank lines skipped",
			input: "\n{\"a\":1}\n\n  \n{\"b\":2}",
			valid: true,
			rows:  2,
		},
		{
			name:  "Scalars per line",
			input: "true\nfalse\n123\n\"s\"\n",
			valid: true,
			rows:  4,
		},
		{
			name:  "Empty input",
			input: "",
			valid: true,
		},
		{
			name:  "Second document broken",
			input: "{\"a\":1}\n{\"b\":}\n",
		},
		{
			name:  "Two documents on one line",
			input: "{\"a\":1} {\"b\":2}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ret := CheckLines([]byte(tt.input), MaxDepth)
			assert.Equal(t, tt.valid, ret.Valid)
			if tt.valid {
				assert.Equal(t, tt.rows, ret.Rows)
			} else {
				assert.NotNil(t, ret.Err)
			}
		})
	}
}

// TestCheckLinesErrorPosition 错误行号按整块 buffer 换算 列号取行内位置
func TestCheckLinesErrorPosition(t *testing.T) {
	ret := CheckLines([]byte("{\"a\":1}\n{\"b\":}\n"), MaxDepth)
	assert.False(t, ret.Valid)
	assert.Equal(t, 2, ret.Err.Line)
	assert.Equal(t, 6, ret.Err.Column)
	assert.Equal(t, scanner.CodeCustom, ret.Err.Code)
	assert.Equal(t, "malformed json value", ret.Err.Message)
}

func TestCheckLinesTrailingData(t *testing.T) {
	ret := CheckLines([]byte("{\"a\":1} {\"b\":2}\n"), MaxDepth)
	assert.False(t, ret.Valid)
	assert.Equal(t, 1, ret.Err.Line)
	assert.Equal(t, "trailing data after json value", ret.Err.Message)
}

func randomString(rnd *rand.Rand) string {
	runes := []rune("abcxyz引号\"\\\n\t空白 0123")
	b := make([]rune, rnd.Intn(10))
	for i := range b {
		b[i] = runes[rnd.Intn(len(runes))]
	}
	return string(b)
}

func randomValue(rnd *rand.Rand, depth int) any {
	if depth <= 0 {
		switch rnd.Intn(4) {
		case 0:
			return rnd.Float64()*2000 - 1000
		case 1:
			return rnd.Intn(2) == 0
		case 2:
			return nil
		default:
			return randomString(rnd)
		}
	}

	switch rnd.Intn(6) {
	case 0:
		m := make(map[string]any)
		for i := 0; i < rnd.Intn(4); i++ {
			m[randomString(rnd)] = randomValue(rnd, depth-1)
		}
		return m
	case 1:
		arr := make([]any, rnd.Intn(4))
		for i := range arr {
			arr[i] = randomValue(rnd, depth-1)
		}
		return arr
	case 2:
		return randomString(rnd)
	case 3:
		return rnd.Float64()
	case 4:
		return rnd.Int63n(2e9) - 1e9
	default:
		return rnd.Intn(2) == 0
	}
}

// TestCheckAgreesWithEncoder 标准编码器产出的任何文档都必须通过校验
func TestCheckAgreesWithEncoder(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))
	c, err := New(nil)
	assert.NoError(t, err)

	for trial := 0; trial < 200; trial++ {
		data, err := json.Marshal(randomValue(rnd, 4))
		assert.NoError(t, err)

		ret := c.Check(data)
		assert.True(t, ret.Valid, "input=%s err=%v", data, ret.Err)
	}
}

func FuzzSkipValue(f *testing.F) {
	f.Add([]byte(`{"name":"John","tags":["a","b"],"n":-1.5e3}`))
	f.Add([]byte(`[true,false,null,{}]`))
	f.Add([]byte(`"esc \" \\ é"`))
	f.Add([]byte(`{"a":}`))
	f.Add([]byte(`[1,2`))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 4096 {
			return
		}

		s := scanner.New(data)
		SkipValue(s)
		if s.Pos() > len(data) {
			t.Fatalf("cursor out of range: %d > %d", s.Pos(), len(data))
		}

		// 单向性质 标准校验器接受的输入 Checker 不可拒绝
		if json.Valid(data) {
			c, _ := New(nil)
			ret := c.Check(data)
			if !ret.Valid {
				t.Fatalf("rejected valid document: %s (%v)", data, ret.Err)
			}
		}
	})
}

func BenchmarkSkipValue(b *testing.B) {
	data := []byte(`{"name":"John Doe","age":32,"address":{"city":"New York","zip":"10001"},"tags":["engineer","remote"],"score":98.6}`)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := scanner.New(data)
		if !SkipValue(s) {
			b.Fatal("skip failed")
		}
	}
}

func BenchmarkEncoderValid(b *testing.B) {
	data := []byte(`{"name":"John Doe","age":32,"address":{"city":"New York","zip":"10001"},"tags":["engineer","remote"],"score":98.6}`)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !json.Valid(data) {
			b.Fatal("valid failed")
		}
	}
}
