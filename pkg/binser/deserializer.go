package binser

import (
	"github.com/lk2023060901/binser-garden-go/pkg/buffer/flat"
	"github.com/lk2023060901/binser-garden-go/pkg/util/endianutil"
	"github.com/lk2023060901/binser-garden-go/pkg/util/merr"
)

// Deserializer 是只读解码门面：从调用方提供的字节序列构造，
// 读方法以与编码完全相同的类型顺序链式调用。
//
// 字节流不携带类型标记，类型或顺序不一致只会表现为下溢失败或
// 被错误解释的值，不会被识别为格式错误。
//
// 首个失败会被锁存，之后的读取全部变为空操作；错误通过 Error
// 统一获取。解码器不强制要求消费完所有字节，调用方可通过
// HasMore/Remaining 自行检测欠读或超读。
type Deserializer struct {
	buf *flat.Buffer
	err error
}

// NewDeserializer 以给定字节序列与字节序创建解码器，游标从 0 开始。
func NewDeserializer(data []byte, endian endianutil.Endianness) *Deserializer {
	return NewDeserializerWithOptions(data, Options{Endianness: endian})
}

// NewDeserializerWithOptions 以给定参数创建解码器。
func NewDeserializerWithOptions(data []byte, opts Options) *Deserializer {
	buf := flat.NewFromBytes(data, opts.Endianness)
	buf.SetLengthLimit(opts.MaxDeclaredLength)
	return &Deserializer{buf: buf}
}

// fail 锁存首个失败。
func (d *Deserializer) fail(err error) *Deserializer {
	if d.err == nil {
		d.err = err
	}
	return d
}

func (d *Deserializer) ReadBool(out *bool) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for bool read"))
	}
	v, err := d.buf.ReadBool()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadInt8(out *int8) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for int8 read"))
	}
	v, err := d.buf.ReadInt8()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadUint8(out *uint8) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for uint8 read"))
	}
	v, err := d.buf.ReadUint8()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadInt16(out *int16) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for int16 read"))
	}
	v, err := d.buf.ReadInt16()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadUint16(out *uint16) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for uint16 read"))
	}
	v, err := d.buf.ReadUint16()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadInt32(out *int32) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for int32 read"))
	}
	v, err := d.buf.ReadInt32()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadUint32(out *uint32) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for uint32 read"))
	}
	v, err := d.buf.ReadUint32()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadInt64(out *int64) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for int64 read"))
	}
	v, err := d.buf.ReadInt64()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadUint64(out *uint64) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for uint64 read"))
	}
	v, err := d.buf.ReadUint64()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadFloat32(out *float32) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for float32 read"))
	}
	v, err := d.buf.ReadFloat32()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

func (d *Deserializer) ReadFloat64(out *float64) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for float64 read"))
	}
	v, err := d.buf.ReadFloat64()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

// ReadString 读取长度前缀字符串。
//
// 注意：长度字段一经读取游标即前进，内容越界失败不会回滚游标，
// 调用方不能假定失败后流仍停留在调用前的位置（见 flat.Buffer.ReadString）。
func (d *Deserializer) ReadString(out *string) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for string read"))
	}
	v, err := d.buf.ReadString()
	if err != nil {
		return d.fail(err)
	}
	*out = v
	return d
}

// ReadArray 读取变长同构序列到 *out。
func ReadArray[T Scalar](d *Deserializer, out *[]T) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for array read"))
	}
	values, err := readArrayValues[T](d.buf)
	if err != nil {
		return d.fail(err)
	}
	*out = values
	return d
}

// ReadStringArray 读取长度前缀的字符串序列到 *out。
func (d *Deserializer) ReadStringArray(out *[]string) *Deserializer {
	if d.err != nil {
		return d
	}
	if out == nil {
		return d.fail(merr.WrapErrParameterInvalidMsg("nil target for string array read"))
	}
	values, err := readStringArrayValues(d.buf)
	if err != nil {
		return d.fail(err)
	}
	*out = values
	return d
}

// ReadFixedArray 读取定长序列到 dst。
// 流中声明的元素数量与 len(dst) 不一致时，读取整段序列后返回
// merr.ErrArraySizeMismatch（与变长读取共用同一编码）。
func ReadFixedArray[T Scalar](d *Deserializer, dst []T) *Deserializer {
	if d.err != nil {
		return d
	}
	values, err := readArrayValues[T](d.buf)
	if err != nil {
		return d.fail(err)
	}
	if len(values) != len(dst) {
		return d.fail(merr.WrapErrArraySizeMismatch(len(dst), len(values)))
	}
	copy(dst, values)
	return d
}

// HasMore 报告游标之后是否还有未消费的字节。
func (d *Deserializer) HasMore() bool {
	return d.buf.HasMore()
}

// Remaining 返回尚未消费的字节数。
func (d *Deserializer) Remaining() int {
	return d.buf.Remaining()
}

// Error 返回首个读取失败的错误，未失败时为 nil。
func (d *Deserializer) Error() error {
	return d.err
}

// Buffer 返回底层缓冲区。
func (d *Deserializer) Buffer() *flat.Buffer {
	return d.buf
}
