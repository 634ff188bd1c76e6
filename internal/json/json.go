// Package json 基于 bytedance/sonic 提供统一的 JSON 编解码入口。
//
// 项目内部一律通过本包使用 JSON，避免各处直接依赖具体实现。
package json

import (
	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal 将任意对象编码为 JSON 字节序列。
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent 将任意对象编码为带缩进的 JSON 字节序列。
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal 将 JSON 字节序列解码到目标对象。
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
