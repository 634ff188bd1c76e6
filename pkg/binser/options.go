package binser

import (
	"github.com/lk2023060901/binser-garden-go/pkg/util/endianutil"
)

// Options 为编解码器的构造参数。
type Options struct {
	// Endianness 为编码使用的字节序，Native 在构造时解析为主机字节序。
	// 字节序不会写入字节流，编码方与解码方需要在带外约定一致。
	Endianness endianutil.Endianness

	// MaxDeclaredLength 为解码时允许的最大声明长度/元素数量，
	// 0 表示不设上限（仅按剩余字节数校验）。
	//
	// 声明长度总是先于结果容器的分配被校验，超限返回
	// merr.ErrLengthLimitExceeded。
	MaxDeclaredLength uint32
}

// DefaultOptions 返回默认参数：主机字节序，不设声明长度上限。
func DefaultOptions() Options {
	return Options{
		Endianness: endianutil.Native,
	}
}
