package flatbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPutRoundTrip(t *testing.T) {
	b := Get()
	require.NotNil(t, b)
	assert.Equal(t, 0, b.Len())

	b.WriteRaw([]byte{1, 2, 3})
	assert.Equal(t, 3, b.Len())
	Put(b)

	// 归还后再取出的缓冲区必须是空的。
	b2 := Get()
	assert.Equal(t, 0, b2.Len())
	Put(b2)
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, index(0))
	assert.Equal(t, 0, index(minSize))
	assert.Equal(t, 1, index(minSize+1))
	assert.Equal(t, steps-1, index(1<<30))
}
