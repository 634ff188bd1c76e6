// Package flat 实现了一个带读游标与字节序标记的扁平字节缓冲区。
//
// 约定：
//   - 写入永远追加到存储末尾，与读游标互不影响；
//   - 读取永远从游标处开始，成功后游标前进所消费的字节数；
//   - 字节序在构造时解析完毕（Native 会立即替换为主机字节序），
//     之后所有带类型的读写都按该字节序编码；
//   - 实例内部不做任何同步，并发使用由调用方自行约束。
package flat

import (
	"encoding/binary"
	"math"

	"github.com/lk2023060901/binser-garden-go/pkg/util/endianutil"
	"github.com/lk2023060901/binser-garden-go/pkg/util/merr"
)

// byteOrder 聚合了 encoding/binary 的读写与追加两组接口，
// binary.LittleEndian 与 binary.BigEndian 均满足该接口。
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Buffer 是一段可增长的字节存储，持有独立的读游标与已解析的字节序标记。
//
// 生命周期与一次编码或解码操作一致：编码时从空缓冲区开始，
// 解码时从调用方提供的字节序列构造，游标从 0 开始。
type Buffer struct {
	data   []byte
	pos    int
	endian endianutil.Endianness
	order  byteOrder

	// lengthLimit 为字符串/序列长度前缀的声明上限，0 表示仅按剩余
	// 字节数校验。用于在分配结果容器之前拒绝恶意长度。
	lengthLimit uint32
}

// New 创建一个空缓冲区。endian 为 Native 时立即解析为主机字节序。
func New(endian endianutil.Endianness) *Buffer {
	b := &Buffer{}
	b.SetEndianness(endian)
	return b
}

// NewFromBytes 以调用方提供的字节序列创建缓冲区，游标从 0 开始。
//
// data 的所有权移交给缓冲区，调用方不应再修改。
func NewFromBytes(data []byte, endian endianutil.Endianness) *Buffer {
	b := New(endian)
	b.data = data
	return b
}

// Len 返回存储的字节总数。
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap 返回底层存储的容量。
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Position 返回当前读游标位置。
func (b *Buffer) Position() int {
	return b.pos
}

// SetPosition 将读游标移动到 pos。
// pos 超出 [0, Len()] 时返回参数错误，游标保持不变。
func (b *Buffer) SetPosition(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return merr.WrapErrParameterInvalid(len(b.data), pos, "set position")
	}
	b.pos = pos
	return nil
}

// Remaining 返回从游标到存储末尾的剩余字节数。
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// HasMore 报告游标之后是否还有未消费的字节。
func (b *Buffer) HasMore() bool {
	return b.pos < len(b.data)
}

// Bytes 返回底层存储。返回的切片与缓冲区共享内存，调用方不应修改。
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Endianness 返回缓冲区的字节序标记，只会是 Little 或 Big。
func (b *Buffer) Endianness() endianutil.Endianness {
	return b.endian
}

// SetEndianness 更换缓冲区的字节序。Native 会立即解析为主机字节序，
// 因此缓冲区的已存储状态永远不会是 Native。
func (b *Buffer) SetEndianness(endian endianutil.Endianness) {
	b.endian = endian.Resolve()
	if b.endian == endianutil.Big {
		b.order = binary.BigEndian
	} else {
		b.order = binary.LittleEndian
	}
}

// LengthLimit 返回长度前缀的声明上限，0 表示未设置。
func (b *Buffer) LengthLimit() uint32 {
	return b.lengthLimit
}

// SetLengthLimit 设置长度前缀的声明上限。
func (b *Buffer) SetLengthLimit(limit uint32) {
	b.lengthLimit = limit
}

// Reserve 预留至少 n 字节的总容量。只是容量提示，对内容与游标无影响。
func (b *Buffer) Reserve(n int) {
	if n <= cap(b.data) {
		return
	}
	grown := make([]byte, len(b.data), n)
	copy(grown, b.data)
	b.data = grown
}

// Clear 清空存储并将游标复位到 0。底层容量保留，便于复用。
func (b *Buffer) Clear() {
	b.data = b.data[:0]
	b.pos = 0
}

// WriteRaw 将 p 原样追加到存储末尾，不做任何字节序转换。
func (b *Buffer) WriteRaw(p []byte) {
	b.data = append(b.data, p...)
}

// WriteRawByte 追加单个字节。
func (b *Buffer) WriteRawByte(c byte) {
	b.data = append(b.data, c)
}

// ReadRaw 从游标处复制 n 字节并前进游标。
// 剩余字节不足时返回下溢错误，此时游标不前进。
func (b *Buffer) ReadRaw(n int) ([]byte, error) {
	if n < 0 {
		return nil, merr.WrapErrParameterInvalid(0, n, "read raw")
	}
	if err := b.ensure(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b.data[b.pos:])
	b.pos += n
	return out, nil
}

// ensure 校验从游标起是否还有 n 字节可读。
// 校验先于任何复制与游标前进，失败时缓冲区状态不变。
func (b *Buffer) ensure(n int) error {
	if b.pos+n > len(b.data) {
		return merr.WrapErrBufferUnderflow(n, len(b.data)-b.pos)
	}
	return nil
}

// WriteBool 以单字节写入布尔值，true 编码为 1，false 编码为 0。
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.WriteRawByte(1)
	} else {
		b.WriteRawByte(0)
	}
}

func (b *Buffer) WriteInt8(v int8) {
	b.WriteRawByte(byte(v))
}

func (b *Buffer) WriteUint8(v uint8) {
	b.WriteRawByte(v)
}

func (b *Buffer) WriteInt16(v int16) {
	b.data = b.order.AppendUint16(b.data, uint16(v))
}

func (b *Buffer) WriteUint16(v uint16) {
	b.data = b.order.AppendUint16(b.data, v)
}

func (b *Buffer) WriteInt32(v int32) {
	b.data = b.order.AppendUint32(b.data, uint32(v))
}

func (b *Buffer) WriteUint32(v uint32) {
	b.data = b.order.AppendUint32(b.data, v)
}

func (b *Buffer) WriteInt64(v int64) {
	b.data = b.order.AppendUint64(b.data, uint64(v))
}

func (b *Buffer) WriteUint64(v uint64) {
	b.data = b.order.AppendUint64(b.data, v)
}

// WriteFloat32 按原始位模式写入 32 位浮点数。
func (b *Buffer) WriteFloat32(v float32) {
	b.data = b.order.AppendUint32(b.data, math.Float32bits(v))
}

// WriteFloat64 按原始位模式写入 64 位浮点数。
func (b *Buffer) WriteFloat64(v float64) {
	b.data = b.order.AppendUint64(b.data, math.Float64bits(v))
}

// ReadBool 读取单字节布尔值，非零字节视为 true。
func (b *Buffer) ReadBool() (bool, error) {
	c, err := b.ReadUint8()
	return c != 0, err
}

func (b *Buffer) ReadInt8() (int8, error) {
	c, err := b.ReadUint8()
	return int8(c), err
}

func (b *Buffer) ReadUint8() (uint8, error) {
	if err := b.ensure(1); err != nil {
		return 0, err
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

func (b *Buffer) ReadUint16() (uint16, error) {
	if err := b.ensure(2); err != nil {
		return 0, err
	}
	v := b.order.Uint16(b.data[b.pos:])
	b.pos += 2
	return v, nil
}

func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

func (b *Buffer) ReadUint32() (uint32, error) {
	if err := b.ensure(4); err != nil {
		return 0, err
	}
	v := b.order.Uint32(b.data[b.pos:])
	b.pos += 4
	return v, nil
}

func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

func (b *Buffer) ReadUint64() (uint64, error) {
	if err := b.ensure(8); err != nil {
		return 0, err
	}
	v := b.order.Uint64(b.data[b.pos:])
	b.pos += 8
	return v, nil
}

func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	return math.Float32frombits(v), err
}

func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()
	return math.Float64frombits(v), err
}

// WriteString 写入长度前缀字符串：先按缓冲区字节序写入 4 字节无符号
// 长度，再原样追加字符串字节。不写终止符，不做编码校验。
func (b *Buffer) WriteString(s string) {
	b.WriteUint32(uint32(len(s)))
	b.data = append(b.data, s...)
}

// ReadString 读取长度前缀字符串。
//
// 注意：长度字段一经读取游标即前进，之后的内容越界失败不会把游标
// 回滚到调用前的位置（与既有格式实现保持一致的行为）。声明长度在
// 分配结果之前先与剩余字节数及 LengthLimit 比对。
func (b *Buffer) ReadString() (string, error) {
	length, err := b.ReadUint32()
	if err != nil {
		return "", err
	}
	if err := b.CheckDeclaredLength(uint64(length), 1); err != nil {
		return "", err
	}
	s := string(b.data[b.pos : b.pos+int(length)])
	b.pos += int(length)
	return s, nil
}

// CheckDeclaredLength 校验流中声明的元素数量是否可信：
// 先与配置的声明上限比对，再按元素宽度与剩余字节数比对。
// 任一校验失败都发生在分配结果容器之前。
func (b *Buffer) CheckDeclaredLength(declared uint64, elemSize int) error {
	if b.lengthLimit > 0 && declared > uint64(b.lengthLimit) {
		return merr.WrapErrLengthLimitExceeded(declared, uint64(b.lengthLimit))
	}
	if declared*uint64(elemSize) > uint64(b.Remaining()) {
		return merr.WrapErrBufferUnderflow(int(declared)*elemSize, b.Remaining())
	}
	return nil
}
