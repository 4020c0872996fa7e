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
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		ok    bool
		code  Code
		rest  string
	}{
		{
			name:  "Simple",
			input: "42",
			want:  42,
			ok:    true,
		},
		{
			name:  "Leading whitespace",
			input: " \t\n 42",
			want:  42,
			ok:    true,
		},
		{
			name:  "Negative",
			input: "-13",
			want:  -13,
			ok:    true,
		},
		{
			name:  "Explicit positive",
			input: "+7",
			want:  7,
			ok:    true,
		},
		{
			name:  "Zero",
			input: "0",
			want:  0,
			ok:    true,
		},
		{
			name:  "Leading zeros",
			input: "0042",
			want:  42,
			ok:    true,
		},
		{
			name:  "Stops at non-digit",
			input: "123abc",
			want:  123,
			ok:    true,
			rest:  "abc",
		},
		{
			name:  "MaxInt64",
			input: "9223372036854775807",
			want:  math.MaxInt64,
			ok:    true,
		},
		{
			name:  "MinInt64",
			input: "-9223372036854775808",
			want:  math.MinInt64,
			ok:    true,
		},
		{
			name:  "Positive overflow",
			input: "9223372036854775808",
			code:  CodeIntegerOverflow,
		},
		{
			name:  "Negative overflow",
			input: "-9223372036854775809",
			code:  CodeIntegerOverflow,
		},
		{
			name:  "Far overflow",
			input: "99999999999999999999999",
			code:  CodeIntegerOverflow,
		},
		{
			name:  "Empty input",
			input: "",
			code:  CodeEndOfInput,
		},
		{
			name:  "Only whitespace",
			input: "   ",
			code:  CodeEndOfInput,
		},
		{
			name:  "No digits",
			input: "abc",
			code:  CodeInvalidNumber,
			rest:  "abc",
		},
		{
			name:  "Sign without digits",
			input: "-x",
			code:  CodeInvalidNumber,
			rest:  "x",
		},
		{
			name:  "Sign at end",
			input: "+",
			code:  CodeInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewString(tt.input)
			got, ok := s.ParseInt64()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.False(t, s.HasError())
			} else {
				assert.Equal(t, tt.code, s.LastError().Code)
			}
			if tt.rest != "" {
				assert.Equal(t, tt.rest, s.Rest().String())
			}
		})
	}
}

func TestParseInt64OverflowCursor(t *testing.T) {
	// 溢出时游标停在肇事数字上 不回退也不消费剩余数字
	s := NewString("92233720368547758079")
	_, ok := s.ParseInt64()
	assert.False(t, ok)
	assert.Equal(t, CodeIntegerOverflow, s.LastError().Code)
	assert.Equal(t, byte('9'), s.Peek())
	assert.Equal(t, 1, s.Rest().Len())
}

func TestParseInt64RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, math.MinInt64 + 1}
	for i := 0; i < 1000; i++ {
		values = append(values, rnd.Int63()-rnd.Int63())
	}

	for _, v := range values {
		s := NewString(strconv.FormatInt(v, 10))
		got, ok := s.ParseInt64()
		assert.True(t, ok)
		assert.Equal(t, v, got)
		assert.True(t, s.AtEnd())
	}
}

func TestParseFloat64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
		rest  string
	}{
		{
			name:  "Simple",
			input: "3.14",
			want:  3.14,
			ok:    true,
		},
		{
			name:  "Integer form",
			input: "42",
			want:  42,
			ok:    true,
		},
		{
			name:  "Leading whitespace",
			input: "  -2.5",
			want:  -2.5,
			ok:    true,
		},
		{
			name:  "No integer digits",
			input: ".5",
			want:  0.5,
			ok:    true,
		},
		{
			name:  "Trailing dot",
			input: "1.",
			want:  1,
			ok:    true,
		},
		{
			name:  "Exponent",
			input: "1.5e3",
			want:  1500,
			ok:    true,
		},
		{
			name:  "Exponent with sign",
			input: "2E-2",
			want:  0.02,
			ok:    true,
		},
		{
			name:  "Dangling exponent consumes mantissa only",
			input: "1e+",
			want:  1,
			ok:    true,
			rest:  "e+",
		},
		{
			name:  "Overflow clamps to +Inf",
			input: "1e999",
			want:  math.Inf(1),
			ok:    true,
		},
		{
			name:  "Overflow clamps to -Inf",
			input: "-1e999",
			want:  math.Inf(-1),
			ok:    true,
		},
		{
			name:  "Underflow clamps to zero",
			input: "1e-999",
			want:  0,
			ok:    true,
		},
		{
			name:  "Dangling exponent without sign",
			input: "7e",
			want:  7,
			ok:    true,
			rest:  "e",
		},
		{
			name:  "Stops at delimiter",
			input: "3.14,next",
			want:  3.14,
			ok:    true,
			rest:  ",next",
		},
		{
			name:  "Not a number",
			input: "abc",
			rest:  "abc",
		},
		{
			name:  "Lone dot",
			input: ".",
			rest:  ".",
		},
		{
			name:  "Lone sign",
			input: "-",
			rest:  "-",
		},
		{
			name:  "Empty input",
			input: "",
		},
		{
			name:  "Hex form rejected",
			input: "0x10",
			want:  0,
			ok:    true,
			rest:  "x10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewString(tt.input)
			got, ok := s.ParseFloat64()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-12)
			} else {
				assert.Equal(t, CodeInvalidNumber, s.LastError().Code)
			}
			if tt.rest != "" {
				assert.Equal(t, tt.rest, s.Rest().String())
			}
		})
	}
}

func TestFloatEnd(t *testing.T) {
	tests := []struct {
		input    string
		consumed int
	}{
		{"3.14", 4},
		{".5", 2},
		{"1.", 2},
		{"-0.5e+10xy", 8},
		{"1e+", 1},
		{"1e+2", 4},
		{"+", 0},
		{"e5", 0},
		{"", 0},
		{"12 34", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.consumed, floatEnd([]byte(tt.input), 0))
		})
	}
}

func BenchmarkParseInt64(b *testing.B) {
	input := []byte("1234567890123")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := New(input)
		if _, ok := s.ParseInt64(); !ok {
			b.Fatal("parse failed")
		}
	}
}
