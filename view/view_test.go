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

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewSubstr(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		n      int
		want   string
	}{
		{
			name:   "Middle window",
			input:  "hello world",
			offset: 6,
			n:      5,
			want:   "world",
		},
		{
			name:   "Full window",
			input:  "hello",
			offset: 0,
			n:      5,
			want:   "hello",
		},
		{
			name:   "Length clamped",
			input:  "hello",
			offset: 3,
			n:      100,
			want:   "lo",
		},
		{
			name:   "Offset at end",
			input:  "hello",
			offset: 5,
			n:      1,
			want:   "",
		},
		{
			name:   "Offset past end",
			input:  "hello",
			offset: 42,
			n:      1,
			want:   "",
		},
		{
			name:   "Zero length",
			input:  "hello",
			offset: 2,
			n:      0,
			want:   "",
		},
		{
			name:   "Negative length",
			input:  "hello",
			offset: 2,
			n:      -1,
			want:   "",
		},
		{
			name:   "Negative offset",
			input:  "hello",
			offset: -1,
			n:      3,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.input).Substr(tt.offset, tt.n)
			assert.Equal(t, tt.want, got.String())
			if tt.want == "" {
				assert.Nil(t, got.Bytes())
			}
		})
	}
}

func TestViewZeroCopy(t *testing.T) {
	buf := []byte("hello world")
	v := New(buf)

	sub := v.Substr(6, 5)
	assert.Equal(t, "world", sub.String())

	// 子窗口必须借用同一块底层数组
	buf[6] = 'W'
	assert.Equal(t, "World", sub.String())
}

func TestViewCanonicalEmpty(t *testing.T) {
	assert.Nil(t, New(nil).Bytes())
	assert.Nil(t, New([]byte{}).Bytes())
	assert.Nil(t, FromString("").Bytes())
	assert.True(t, New(nil).IsEmpty())
	assert.Equal(t, 0, FromString("").Len())
}

func TestViewEquals(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"Same content", "hello", "hello", true},
		{"Different content", "hello", "hellO", false},
		{"Different length", "hello", "hell", false},
		{"Both empty", "", "", true},
		{"One empty", "", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromString(tt.a).Equals(FromString(tt.b)))
		})
	}
}

func TestViewStartsWith(t *testing.T) {
	v := FromString("content-length")
	assert.True(t, v.StartsWith(FromString("content")))
	assert.True(t, v.StartsWith(FromString("")))
	assert.True(t, v.StartsWith(nil))
	assert.False(t, v.StartsWith(FromString("length")))
	assert.False(t, v.StartsWith(FromString("content-length-overlong")))
}

func TestViewCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"Equal", "abc", "abc", 0},
		{"Less by byte", "abc", "abd", -1},
		{"Greater by byte", "abd", "abc", 1},
		{"Shorter is less", "ab", "abc", -1},
		{"Longer is greater", "abc", "ab", 1},
		{"Empty vs empty", "", "", 0},
		{"Empty vs any", "", "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromString(tt.a).Compare(FromString(tt.b)))
		})
	}
}

func TestViewCompareReflexive(t *testing.T) {
	inputs := []string{"", "a", "ab", "abc", "zzz", "\x00\x01", "hello world"}
	for _, a := range inputs {
		for _, b := range inputs {
			va, vb := FromString(a), FromString(b)
			assert.Equal(t, va.Compare(vb), -vb.Compare(va))
			if va.Equals(vb) {
				assert.Equal(t, 0, va.Compare(vb))
			}
		}
	}
}

func TestViewHash(t *testing.T) {
	a := FromString("field")
	b := New([]byte("field"))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), FromString("Field").Hash())
}
