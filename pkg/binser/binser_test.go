package binser

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/binser-garden-go/pkg/util/endianutil"
	"github.com/lk2023060901/binser-garden-go/pkg/util/merr"
)

func TestScalarRoundTrip(t *testing.T) {
	for _, endian := range []endianutil.Endianness{endianutil.Little, endianutil.Big, endianutil.Native} {
		t.Run(endian.String(), func(t *testing.T) {
			roundTrip(t, true, endian)
			roundTrip(t, int8(-42), endian)
			roundTrip(t, uint8(0xFF), endian)
			roundTrip(t, int16(-12345), endian)
			roundTrip(t, uint16(0xFFFF), endian)
			roundTrip(t, int32(-123456789), endian)
			roundTrip(t, uint32(0x12345678), endian)
			roundTrip(t, int64(-1234567890123456789), endian)
			roundTrip(t, uint64(0xFFFFFFFFFFFFFFFF), endian)
			roundTrip(t, float32(3.14), endian)
			roundTrip(t, 2.718281828459045, endian)
			roundTrip(t, "hello world", endian)
		})
	}
}

func roundTrip[T Value](t *testing.T, value T, endian endianutil.Endianness) {
	t.Helper()
	data, err := Serialize(value, endian)
	require.NoError(t, err)
	got, err := Deserialize[T](data, endian)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestCrossEndianDecode(t *testing.T) {
	data, err := Serialize(uint32(0x12345678), endianutil.Little)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, data)

	// 用错误的字节序解码不会报错，只会得到字节反转后的值。
	swapped, err := Deserialize[uint32](data, endianutil.Big)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x78563412), swapped)
	assert.Equal(t, endianutil.SwapUint32(0x12345678), swapped)
}

func TestEmptyString(t *testing.T) {
	data, err := Serialize("", endianutil.Little)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)

	s, err := Deserialize[string](data, endianutil.Little)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestLargeString(t *testing.T) {
	big := strings.Repeat("x", 10000)
	data, err := Serialize(big, endianutil.Little)
	require.NoError(t, err)
	assert.Equal(t, 4+10000, len(data))

	got, err := Deserialize[string](data, endianutil.Little)
	require.NoError(t, err)
	assert.Equal(t, big, got)
}

func TestMalformedStringLength(t *testing.T) {
	// 长度字段声明 0xFFFFFFFF 字节内容，流中并没有这么多字节。
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	_, err := Deserialize[string](data, endianutil.Little)
	assert.True(t, errors.Is(err, merr.ErrBufferUnderflow))
}

func TestMaxDeclaredLength(t *testing.T) {
	data, err := Serialize(strings.Repeat("a", 32), endianutil.Little)
	require.NoError(t, err)

	// 不设上限时正常解码。
	s, err := Deserialize[string](data, endianutil.Little)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	// 设置上限后，声明长度超限在分配之前即被拒绝。
	_, err = DeserializeWithOptions[string](data, Options{
		Endianness:        endianutil.Little,
		MaxDeclaredLength: 16,
	})
	assert.True(t, errors.Is(err, merr.ErrLengthLimitExceeded))
}

func TestArrayRoundTrip(t *testing.T) {
	values := []int32{1, 2, 3, 4, 5}
	data, err := SerializeArray(values, endianutil.Little)
	require.NoError(t, err)
	assert.Equal(t, 4+5*4, len(data))
	assert.Equal(t, []byte{5, 0, 0, 0}, data[:4])

	got, err := DeserializeArray[int32](data, endianutil.Little)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestEmptyArray(t *testing.T) {
	data, err := SerializeArray([]float64{}, endianutil.Big)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)

	got, err := DeserializeArray[float64](data, endianutil.Big)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArrayDeclaredCountValidatedBeforeAllocation(t *testing.T) {
	// 声明 0x40000000 个 uint64，远超流中剩余字节数。
	data := []byte{0x00, 0x00, 0x00, 0x40}
	_, err := DeserializeArray[uint64](data, endianutil.Little)
	assert.True(t, errors.Is(err, merr.ErrBufferUnderflow))
}

func TestStringArrayRoundTrip(t *testing.T) {
	values := []string{"alpha", "", "gamma"}

	s := NewSerializer(endianutil.Little)
	s.WriteStringArray(values)
	require.NoError(t, s.Error())
	// 数量前缀 + 每个字符串各自的长度前缀和内容。
	assert.Equal(t, 4+(4+5)+4+(4+5), len(s.Data()))

	var got []string
	d := NewDeserializer(s.Data(), endianutil.Little)
	d.ReadStringArray(&got)
	require.NoError(t, d.Error())
	assert.Equal(t, values, got)
}

func TestStringArrayDeclaredCountValidated(t *testing.T) {
	// 声明 1000 个字符串，但流中只有数量前缀本身。
	data := []byte{0xE8, 0x03, 0x00, 0x00}
	var got []string
	d := NewDeserializer(data, endianutil.Little)
	d.ReadStringArray(&got)
	assert.True(t, errors.Is(d.Error(), merr.ErrBufferUnderflow))
}

func TestFixedArraySizeMismatch(t *testing.T) {
	data, err := SerializeArray([]int16{1, 2, 3}, endianutil.Little)
	require.NoError(t, err)

	dst := make([]int16, 5)
	d := NewDeserializer(data, endianutil.Little)
	ReadFixedArray(d, dst)
	err = d.Error()
	assert.True(t, errors.Is(err, merr.ErrArraySizeMismatch))
}

func TestFixedArrayRoundTrip(t *testing.T) {
	s := NewSerializer(endianutil.Big)
	WriteArray(s, []uint8{9, 8, 7})
	require.NoError(t, s.Error())

	dst := make([]uint8, 3)
	d := NewDeserializer(s.Data(), endianutil.Big)
	ReadFixedArray(d, dst)
	require.NoError(t, d.Error())
	assert.Equal(t, []uint8{9, 8, 7}, dst)
}

func TestChainedHeterogeneous(t *testing.T) {
	s := NewSerializer(endianutil.Little)
	s.WriteInt32(42).
		WriteString("test").
		WriteFloat32(3.14).
		WriteBool(true)
	require.NoError(t, s.Error())
	data := s.Data()
	assert.Equal(t, 4+8+4+1, len(data))

	var (
		i int32
		n string
		f float32
		b bool
	)
	d := NewDeserializer(data, endianutil.Little)
	d.ReadInt32(&i).
		ReadString(&n).
		ReadFloat32(&f).
		ReadBool(&b)
	require.NoError(t, d.Error())
	assert.Equal(t, int32(42), i)
	assert.Equal(t, "test", n)
	assert.Equal(t, float32(3.14), f)
	assert.True(t, b)
	assert.False(t, d.HasMore())
	assert.Equal(t, 0, d.Remaining())
}

func TestDeserializerStickyError(t *testing.T) {
	data, err := Serialize(uint16(7), endianutil.Little)
	require.NoError(t, err)

	var (
		v64 uint64
		v16 uint16
	)
	d := NewDeserializer(data, endianutil.Little)
	d.ReadUint64(&v64).ReadUint16(&v16)

	// 首个失败被锁存，之后的读取全部空操作。
	assert.True(t, errors.Is(d.Error(), merr.ErrBufferUnderflow))
	assert.Equal(t, uint64(0), v64)
	assert.Equal(t, uint16(0), v16)
}

func TestDeserializerNilTarget(t *testing.T) {
	data, err := Serialize(int32(1), endianutil.Little)
	require.NoError(t, err)

	d := NewDeserializer(data, endianutil.Little)
	d.ReadInt32(nil)
	assert.True(t, errors.Is(d.Error(), merr.ErrParameterInvalid))
}

func TestPartialConsumption(t *testing.T) {
	s := NewSerializer(endianutil.Little)
	s.WriteUint32(1).WriteUint32(2)

	var v uint32
	d := NewDeserializer(s.Data(), endianutil.Little)
	d.ReadUint32(&v)
	require.NoError(t, d.Error())
	assert.True(t, d.HasMore())
	assert.Equal(t, 4, d.Remaining())
}

func TestSerializerClear(t *testing.T) {
	s := NewSerializer(endianutil.Little)
	s.WriteUint64(0xDEADBEEF)
	assert.Equal(t, 8, len(s.Data()))

	s.Clear()
	assert.Equal(t, 0, len(s.Data()))

	s.WriteUint8(1)
	require.NoError(t, s.Error())
	assert.Equal(t, 1, len(s.Data()))
}

func TestAcquireRelease(t *testing.T) {
	s := AcquireSerializer(endianutil.Little)
	s.WriteString("pooled").WriteUint16(7)
	require.NoError(t, s.Error())

	var (
		text string
		n    uint16
	)
	d := NewDeserializer(s.Data(), endianutil.Little)
	d.ReadString(&text).ReadUint16(&n)
	require.NoError(t, d.Error())
	assert.Equal(t, "pooled", text)
	assert.Equal(t, uint16(7), n)

	s.Release()
}
