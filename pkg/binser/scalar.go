package binser

import (
	"github.com/lk2023060901/binser-garden-go/pkg/buffer/flat"
	"github.com/lk2023060901/binser-garden-go/pkg/util/merr"
)

// Scalar 是本编码格式支持的定宽标量类型集合。
//
// 集合在编译期闭合：只收录宽度确定的类型，刻意排除 int/uint 这类
// 平台相关宽度的类型，避免同一份字节流在不同平台上宽度不一致。
type Scalar interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// Value 是单值便捷接口（Serialize/Deserialize）支持的类型集合。
type Value interface {
	Scalar | string
}

// scalarSize 返回 T 编码后的字节宽度。
func scalarSize[T Scalar]() int {
	var zero T
	switch any(zero).(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// writeValue 按 v 的具体类型将其写入缓冲区。
// 类型集合与 Value 约束一致，调用方保证不会传入集合之外的类型。
func writeValue(b *flat.Buffer, v any) {
	switch x := v.(type) {
	case bool:
		b.WriteBool(x)
	case int8:
		b.WriteInt8(x)
	case uint8:
		b.WriteUint8(x)
	case int16:
		b.WriteInt16(x)
	case uint16:
		b.WriteUint16(x)
	case int32:
		b.WriteInt32(x)
	case uint32:
		b.WriteUint32(x)
	case int64:
		b.WriteInt64(x)
	case uint64:
		b.WriteUint64(x)
	case float32:
		b.WriteFloat32(x)
	case float64:
		b.WriteFloat64(x)
	case string:
		b.WriteString(x)
	}
}

// readValue 按 zero 的具体类型从缓冲区读取一个值。
func readValue(b *flat.Buffer, zero any) (any, error) {
	switch zero.(type) {
	case bool:
		return b.ReadBool()
	case int8:
		return b.ReadInt8()
	case uint8:
		return b.ReadUint8()
	case int16:
		return b.ReadInt16()
	case uint16:
		return b.ReadUint16()
	case int32:
		return b.ReadInt32()
	case uint32:
		return b.ReadUint32()
	case int64:
		return b.ReadInt64()
	case uint64:
		return b.ReadUint64()
	case float32:
		return b.ReadFloat32()
	case float64:
		return b.ReadFloat64()
	case string:
		return b.ReadString()
	default:
		return nil, merr.WrapErrParameterInvalidMsg("unsupported value type %T", zero)
	}
}

// readScalar 从缓冲区读取一个 T 类型标量。
func readScalar[T Scalar](b *flat.Buffer) (T, error) {
	var zero T
	v, err := readValue(b, any(zero))
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// readStringArrayValues 读取一个长度前缀的字符串序列。
// 每个元素至少占 4 字节长度前缀，声明数量按此宽度预校验。
func readStringArrayValues(b *flat.Buffer) ([]string, error) {
	count, err := b.ReadUint32()
	if err != nil {
		return nil, err
	}
	if err := b.CheckDeclaredLength(uint64(count), 4); err != nil {
		return nil, err
	}
	out := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		s, err := b.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// readArrayValues 读取一个长度前缀的同构序列。
//
// 数量前缀一经读取游标即前进；随后声明数量会先与剩余字节数
// 及声明上限比对，通过后才分配结果切片并逐元素读取。
func readArrayValues[T Scalar](b *flat.Buffer) ([]T, error) {
	count, err := b.ReadUint32()
	if err != nil {
		return nil, err
	}
	if err := b.CheckDeclaredLength(uint64(count), scalarSize[T]()); err != nil {
		return nil, err
	}
	out := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := readScalar[T](b)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
