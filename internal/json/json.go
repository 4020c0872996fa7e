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

// Package json 统一 JSON 编解码实现 全局使用 goccy/go-json
package json

import (
	"io"

	"github.com/goccy/go-json"
)

// Encoder 流式编码器 每次 Encode 写入一行
type Encoder interface {
	Encode(v any) error
}

// NewEncoder 创建并返回写入 w 的 Encoder 实例
func NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

// Marshal 序列化 v 为 JSON 字节流
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal 反序列化 JSON 字节流至 v
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
