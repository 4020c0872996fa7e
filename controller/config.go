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

package controller

type Config struct {
	// MaxBodyBytes 单次校验请求体的大小上限
	MaxBodyBytes int64 `config:"maxBodyBytes"`

	// Checker 指定每种格式 Checker 的校验特性
	Checker CheckerConfig `config:"checker"`
}

func (c Config) GetMaxBodyBytes() int64 {
	if c.MaxBodyBytes <= 0 {
		return 16 << 20
	}
	return c.MaxBodyBytes
}

type CheckerConfig struct {
	CSV    map[string]any `config:"csv"`
	JSON   map[string]any `config:"json"`
	NDJSON map[string]any `config:"ndjson"`
}

func (c CheckerConfig) Get(format string) map[string]any {
	switch format {
	case "csv":
		return c.CSV
	case "json":
		return c.JSON
	case "ndjson":
		return c.NDJSON
	}
	return nil
}
