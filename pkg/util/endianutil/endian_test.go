package endianutil

import (
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/lk2023060901/binser-garden-go/pkg/util/merr"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, Little, Little.Resolve())
	assert.Equal(t, Big, Big.Resolve())

	resolved := Native.Resolve()
	assert.NotEqual(t, Native, resolved)
	assert.Equal(t, HostOrder(), resolved)
}

func TestHostOrderMatchesNativeEndian(t *testing.T) {
	probe := binary.NativeEndian.AppendUint32(nil, 0x11223344)
	if probe[0] == 0x44 {
		assert.Equal(t, Little, HostOrder())
	} else {
		assert.Equal(t, Big, HostOrder())
	}
}

func TestByteOrder(t *testing.T) {
	assert.Equal(t, binary.LittleEndian, Little.ByteOrder())
	assert.Equal(t, binary.BigEndian, Big.ByteOrder())
	assert.Equal(t, HostOrder().ByteOrder(), Native.ByteOrder())
}

func TestString(t *testing.T) {
	assert.Equal(t, "little", Little.String())
	assert.Equal(t, "big", Big.String())
	assert.Equal(t, "native", Native.String())
	assert.Equal(t, "unknown", Endianness(42).String())
}

func TestSwap(t *testing.T) {
	assert.Equal(t, uint16(0x2211), SwapUint16(0x1122))
	assert.Equal(t, uint32(0x78563412), SwapUint32(0x12345678))
	assert.Equal(t, uint64(0x8877665544332211), SwapUint64(0x1122334455667788))

	// 反转两次应当还原原始位模式。
	assert.Equal(t, float32(3.14), SwapFloat32(SwapFloat32(3.14)))
	assert.Equal(t, 2.718281828, SwapFloat64(SwapFloat64(2.718281828)))
}

func TestParseEndianness(t *testing.T) {
	cases := []struct {
		name string
		want Endianness
	}{
		{"little", Little},
		{"big", Big},
		{"native", Native},
		{"", Native},
	}
	for _, c := range cases {
		got, err := ParseEndianness(c.name)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := ParseEndianness("middle")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, merr.ErrParameterInvalid))
}
