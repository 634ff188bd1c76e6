// Package endianutil 提供主机字节序探测与多字节值的字节序反转能力。
//
// 设计约定：
//   - Native 只是构造参数层面的占位值，经 Resolve 解析后只会得到 Little 或 Big；
//   - 主机字节序在进程内是常量，包初始化时探测一次，之后直接复用；
//   - 反转操作只作用于原始位模式：浮点数按同宽度无符号整数反转后再还原，
//     不做任何数值变换。
package endianutil

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/lk2023060901/binser-garden-go/pkg/util/merr"
)

// Endianness 表示编码多字节数值时使用的字节序。
type Endianness uint8

const (
	// Little 表示小端字节序（最低有效字节在前）。
	Little Endianness = iota
	// Big 表示大端字节序（最高有效字节在前）。
	Big
	// Native 表示使用主机字节序。
	//
	// 注意：Native 永远不会作为已解析状态存储，任何接收 Endianness 的
	// 组件都应在构造时调用 Resolve 将其替换为实际字节序。
	Native
)

// hostOrder 为进程的主机字节序，包初始化时通过已知常量的内存布局探测一次。
var hostOrder = probeHostOrder()

// probeHostOrder 将常量 0x0102 按主机字节序写入内存，
// 根据首字节判断当前主机为小端还是大端。
func probeHostOrder() Endianness {
	probe := binary.NativeEndian.AppendUint16(nil, 0x0102)
	if probe[0] == 0x02 {
		return Little
	}
	return Big
}

// HostOrder 返回进程的主机字节序，只会是 Little 或 Big。
func HostOrder() Endianness {
	return hostOrder
}

// Resolve 将 Native 解析为主机字节序；Little/Big 原样返回。
func (e Endianness) Resolve() Endianness {
	if e == Native {
		return hostOrder
	}
	return e
}

// ByteOrder 返回与当前字节序对应的 encoding/binary 字节序实现。
// Native 会先被解析为主机字节序。
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e.Resolve() == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endianness) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// SwapUint16 反转 16 位值的字节序。
func SwapUint16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// SwapUint32 反转 32 位值的字节序。
func SwapUint32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// SwapUint64 反转 64 位值的字节序。
func SwapUint64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// SwapFloat32 按原始位模式反转 32 位浮点数的字节序。
// 值先被当作同宽度无符号整数反转，再重新解释为浮点数。
func SwapFloat32(v float32) float32 {
	return math.Float32frombits(bits.ReverseBytes32(math.Float32bits(v)))
}

// SwapFloat64 按原始位模式反转 64 位浮点数的字节序。
func SwapFloat64(v float64) float64 {
	return math.Float64frombits(bits.ReverseBytes64(math.Float64bits(v)))
}

// ParseEndianness 将配置文件中的字节序名称解析为 Endianness。
// 支持 little/big/native（空串按 native 处理）。
func ParseEndianness(name string) (Endianness, error) {
	switch name {
	case "little":
		return Little, nil
	case "big":
		return Big, nil
	case "native", "":
		return Native, nil
	default:
		return Native, merr.WrapErrParameterInvalid("little|big|native", name)
	}
}
