package flat

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/binser-garden-go/pkg/util/endianutil"
	"github.com/lk2023060901/binser-garden-go/pkg/util/merr"
)

func TestWriteAppendsReadAdvances(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteInt32(42)
	b.WriteInt16(100)
	assert.Equal(t, 6, b.Len())
	assert.Equal(t, 0, b.Position())

	v32, err := b.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(42), v32)
	assert.Equal(t, 4, b.Position())

	v16, err := b.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(100), v16)
	assert.Equal(t, 6, b.Position())
	assert.False(t, b.HasMore())

	// 读空后继续写入，游标保持原位，剩余字节数随写入增长。
	b.WriteUint8(7)
	assert.Equal(t, 6, b.Position())
	assert.Equal(t, 1, b.Remaining())
	assert.True(t, b.HasMore())
}

func TestLittleEndianLayout(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteUint32(0x12345678)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, b.Bytes())
}

func TestBigEndianLayout(t *testing.T) {
	b := New(endianutil.Big)
	b.WriteUint32(0x12345678)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, b.Bytes())
}

func TestNativeResolvedAtConstruction(t *testing.T) {
	b := New(endianutil.Native)
	assert.NotEqual(t, endianutil.Native, b.Endianness())
	assert.Equal(t, endianutil.HostOrder(), b.Endianness())
}

func TestReadUnderflowKeepsCursor(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteUint16(0x1122)

	_, err := b.ReadUint32()
	assert.True(t, errors.Is(err, merr.ErrBufferUnderflow))
	// 原子性：校验先于游标前进，失败后游标停在原位。
	assert.Equal(t, 0, b.Position())

	v, err := b.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1122), v)
}

func TestSetPosition(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteUint32(0xAABBCCDD)

	require.NoError(t, b.SetPosition(4))
	assert.False(t, b.HasMore())

	require.NoError(t, b.SetPosition(0))
	v, err := b.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xAABBCCDD), v)

	err = b.SetPosition(5)
	assert.True(t, errors.Is(err, merr.ErrParameterInvalid))
	err = b.SetPosition(-1)
	assert.True(t, errors.Is(err, merr.ErrParameterInvalid))
	assert.Equal(t, 4, b.Position())
}

func TestStringRoundTrip(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteString("test")
	assert.Equal(t, []byte{4, 0, 0, 0, 't', 'e', 's', 't'}, b.Bytes())

	s, err := b.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "test", s)
}

func TestEmptyStringIsFourZeroBytes(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteString("")
	assert.Equal(t, []byte{0, 0, 0, 0}, b.Bytes())

	s, err := b.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestReadStringLengthFieldNotRolledBack(t *testing.T) {
	// 长度字段声明 0xFFFFFFFF 字节内容，但流中没有对应内容。
	b := New(endianutil.Little)
	b.WriteUint32(0xFFFFFFFF)

	_, err := b.ReadString()
	assert.True(t, errors.Is(err, merr.ErrBufferUnderflow))
	// 长度字段已被消费，游标停在长度字段之后而非调用前的位置。
	assert.Equal(t, 4, b.Position())
}

func TestCheckDeclaredLength(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteRaw(make([]byte, 16))

	assert.NoError(t, b.CheckDeclaredLength(4, 4))
	assert.NoError(t, b.CheckDeclaredLength(16, 1))

	err := b.CheckDeclaredLength(5, 4)
	assert.True(t, errors.Is(err, merr.ErrBufferUnderflow))

	b.SetLengthLimit(8)
	err = b.CheckDeclaredLength(9, 1)
	assert.True(t, errors.Is(err, merr.ErrLengthLimitExceeded))
}

func TestReadRaw(t *testing.T) {
	b := NewFromBytes([]byte{1, 2, 3, 4}, endianutil.Little)

	p, err := b.ReadRaw(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, p)

	_, err = b.ReadRaw(2)
	assert.True(t, errors.Is(err, merr.ErrBufferUnderflow))
	assert.Equal(t, 3, b.Position())

	_, err = b.ReadRaw(-1)
	assert.True(t, errors.Is(err, merr.ErrParameterInvalid))
}

func TestClearKeepsCapacity(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteRaw(make([]byte, 128))
	_, err := b.ReadRaw(64)
	require.NoError(t, err)

	capBefore := b.Cap()
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Position())
	assert.Equal(t, capBefore, b.Cap())
}

func TestReserve(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteUint32(7)
	b.Reserve(1024)
	assert.GreaterOrEqual(t, b.Cap(), 1024)
	assert.Equal(t, 4, b.Len())

	v, err := b.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)
}

func TestFloatBitPatterns(t *testing.T) {
	b := New(endianutil.Big)
	b.WriteFloat32(3.5)
	b.WriteFloat64(-1.25)

	f32, err := b.ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), f32)

	f64, err := b.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, -1.25, f64)
}

func TestBoolEncoding(t *testing.T) {
	b := New(endianutil.Little)
	b.WriteBool(true)
	b.WriteBool(false)
	assert.Equal(t, []byte{1, 0}, b.Bytes())

	v, err := b.ReadBool()
	require.NoError(t, err)
	assert.True(t, v)
	v, err = b.ReadBool()
	require.NoError(t, err)
	assert.False(t, v)

	// 非零字节一律视为 true。
	b2 := NewFromBytes([]byte{0x7F}, endianutil.Little)
	v, err = b2.ReadBool()
	require.NoError(t, err)
	assert.True(t, v)
}
