// Package binser 提供面向定宽数值、文本与同构序列的二进制编解码能力。
//
// 编码格式为按位置排列的长度前缀格式：
//   - 定宽标量：按缓冲区字节序编码的原始字节；
//   - 文本：4 字节无符号长度 + 原始字节（不含终止符，不做编码校验）；
//   - 同构序列：4 字节无符号元素数量 + 逐元素编码。
//
// 格式不自描述：没有魔数、版本号或类型标记，解码方必须按编码时
// 完全相同的类型顺序读取；字节序是构造参数，需要在带外约定一致。
//
// 典型用法（链式门面）：
//
//	s := binser.NewSerializer(endianutil.Little)
//	s.WriteInt32(42).WriteString("test").WriteFloat32(3.14).WriteBool(true)
//	data := s.Data()
//
//	var (
//		i int32
//		t string
//		f float32
//		b bool
//	)
//	d := binser.NewDeserializer(data, endianutil.Little)
//	d.ReadInt32(&i).ReadString(&t).ReadFloat32(&f).ReadBool(&b)
//	if err := d.Error(); err != nil {
//		// 处理失败
//	}
//
// 单值场景可以使用 Serialize/Deserialize 便捷函数。
// 所有类型都是普通可变值，不做内部同步，并发使用由调用方约束。
package binser

import (
	"github.com/lk2023060901/binser-garden-go/pkg/metrics"
	"github.com/lk2023060901/binser-garden-go/pkg/util/endianutil"
)

// Serialize 编码单个值并返回完整字节序列。
func Serialize[T Value](value T, endian endianutil.Endianness) ([]byte, error) {
	return SerializeWithOptions(value, Options{Endianness: endian})
}

// SerializeWithOptions 以给定参数编码单个值。
func SerializeWithOptions[T Value](value T, opts Options) ([]byte, error) {
	s := NewSerializerWithOptions(opts)
	writeValue(s.buf, any(value))
	data, err := s.Data(), s.Error()
	metrics.RecordSerialize(len(data), err)
	return data, err
}

// Deserialize 从字节序列解码单个值。
func Deserialize[T Value](data []byte, endian endianutil.Endianness) (T, error) {
	return DeserializeWithOptions[T](data, Options{Endianness: endian})
}

// DeserializeWithOptions 以给定参数解码单个值。
func DeserializeWithOptions[T Value](data []byte, opts Options) (T, error) {
	d := NewDeserializerWithOptions(data, opts)
	var zero T
	v, err := readValue(d.buf, any(zero))
	metrics.RecordDeserialize(len(data), err)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// SerializeArray 编码一个同构序列并返回完整字节序列。
func SerializeArray[T Scalar](values []T, endian endianutil.Endianness) ([]byte, error) {
	s := NewSerializer(endian)
	WriteArray(s, values)
	data, err := s.Data(), s.Error()
	metrics.RecordSerialize(len(data), err)
	return data, err
}

// DeserializeArray 从字节序列解码一个同构序列。
func DeserializeArray[T Scalar](data []byte, endian endianutil.Endianness) ([]T, error) {
	d := NewDeserializer(data, endian)
	values, err := readArrayValues[T](d.buf)
	metrics.RecordDeserialize(len(data), err)
	return values, err
}
