package binser

import (
	"github.com/lk2023060901/binser-garden-go/internal/pool/flatbuffer"
	"github.com/lk2023060901/binser-garden-go/pkg/buffer/flat"
	"github.com/lk2023060901/binser-garden-go/pkg/util/endianutil"
)

// Serializer 是只写编码门面：独占一个空缓冲区，按调用顺序将值
// 追加编码，最终通过 Data 取出完整字节序列。
//
// 所有写方法返回接收者本身，便于链式书写一组异构写入。
// 一旦出现失败（例如从池中取出后误用），后续写入全部变为空操作，
// 错误通过 Error 统一获取。
type Serializer struct {
	buf    *flat.Buffer
	err    error
	pooled bool
}

// NewSerializer 创建一个空的编码器。
func NewSerializer(endian endianutil.Endianness) *Serializer {
	return NewSerializerWithOptions(Options{Endianness: endian})
}

// NewSerializerWithOptions 以给定参数创建编码器。
func NewSerializerWithOptions(opts Options) *Serializer {
	buf := flat.New(opts.Endianness)
	buf.SetLengthLimit(opts.MaxDeclaredLength)
	return &Serializer{buf: buf}
}

// AcquireSerializer 从对象池中取出缓冲区创建编码器，用于高频编码
// 场景下降低分配与 GC 压力。使用完毕应调用 Release 归还；
// Data 返回的切片与池中缓冲区共享内存，Release 之前需自行复制。
func AcquireSerializer(endian endianutil.Endianness) *Serializer {
	buf := flatbuffer.Get()
	buf.SetEndianness(endian)
	return &Serializer{buf: buf, pooled: true}
}

// Release 将池化的缓冲区归还对象池。归还后编码器不允许再被使用。
func (s *Serializer) Release() {
	if !s.pooled || s.buf == nil {
		return
	}
	flatbuffer.Put(s.buf)
	s.buf = nil
}

func (s *Serializer) WriteBool(v bool) *Serializer {
	if s.err == nil {
		s.buf.WriteBool(v)
	}
	return s
}

func (s *Serializer) WriteInt8(v int8) *Serializer {
	if s.err == nil {
		s.buf.WriteInt8(v)
	}
	return s
}

func (s *Serializer) WriteUint8(v uint8) *Serializer {
	if s.err == nil {
		s.buf.WriteUint8(v)
	}
	return s
}

func (s *Serializer) WriteInt16(v int16) *Serializer {
	if s.err == nil {
		s.buf.WriteInt16(v)
	}
	return s
}

func (s *Serializer) WriteUint16(v uint16) *Serializer {
	if s.err == nil {
		s.buf.WriteUint16(v)
	}
	return s
}

func (s *Serializer) WriteInt32(v int32) *Serializer {
	if s.err == nil {
		s.buf.WriteInt32(v)
	}
	return s
}

func (s *Serializer) WriteUint32(v uint32) *Serializer {
	if s.err == nil {
		s.buf.WriteUint32(v)
	}
	return s
}

func (s *Serializer) WriteInt64(v int64) *Serializer {
	if s.err == nil {
		s.buf.WriteInt64(v)
	}
	return s
}

func (s *Serializer) WriteUint64(v uint64) *Serializer {
	if s.err == nil {
		s.buf.WriteUint64(v)
	}
	return s
}

func (s *Serializer) WriteFloat32(v float32) *Serializer {
	if s.err == nil {
		s.buf.WriteFloat32(v)
	}
	return s
}

func (s *Serializer) WriteFloat64(v float64) *Serializer {
	if s.err == nil {
		s.buf.WriteFloat64(v)
	}
	return s
}

// WriteString 写入长度前缀字符串（4 字节无符号长度 + 原始字节）。
func (s *Serializer) WriteString(v string) *Serializer {
	if s.err == nil {
		s.buf.WriteString(v)
	}
	return s
}

// WriteArray 写入长度前缀的同构序列：4 字节无符号元素数量，
// 随后按顺序逐元素编码。定长与变长序列共用同一编码。
func WriteArray[T Scalar](s *Serializer, values []T) *Serializer {
	if s.err != nil {
		return s
	}
	s.buf.WriteUint32(uint32(len(values)))
	for _, v := range values {
		writeValue(s.buf, v)
	}
	return s
}

// WriteStringArray 写入长度前缀的字符串序列：4 字节无符号元素数量，
// 随后每个字符串独立带长度前缀。
func (s *Serializer) WriteStringArray(values []string) *Serializer {
	if s.err != nil {
		return s
	}
	s.buf.WriteUint32(uint32(len(values)))
	for _, v := range values {
		s.buf.WriteString(v)
	}
	return s
}

// Data 返回到目前为止累计的完整字节序列。
// 返回的切片与内部缓冲区共享内存，调用方不应修改。
func (s *Serializer) Data() []byte {
	return s.buf.Bytes()
}

// Buffer 返回底层缓冲区。
func (s *Serializer) Buffer() *flat.Buffer {
	return s.buf
}

// Error 返回首个写入失败的错误，未失败时为 nil。
func (s *Serializer) Error() error {
	return s.err
}

// Clear 清空已编码内容与错误状态，编码器可重新使用。
func (s *Serializer) Clear() {
	s.buf.Clear()
	s.err = nil
}
