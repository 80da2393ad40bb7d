package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLevelIsIdempotentAtDepthOne(t *testing.T) {
	for i := 0; i < 10; i++ {
		p := NewPath(i)
		assert.True(t, p.TopLevel().Equal(p), "path %s", p)
		assert.True(t, p.TopLevel().TopLevel().Equal(p))
	}
}

func TestTopLevelTerminatesAtDepthOne(t *testing.T) {
	p := NewPath(6)
	for d := 1; d <= 12; d++ {
		top := p.TopLevel()
		require.Equal(t, 1, top.Depth(), "from depth %d", p.Depth())
		assert.Equal(t, 6, top[0])
		p = append(p, d%4)
	}
}

func TestTopLevelDoesNotMutateReceiver(t *testing.T) {
	p := NewPath(6, 3, 1)
	_ = p.TopLevel()
	assert.Equal(t, "6:3:1", p.String())
}

func TestTopLevelOfEmptyPath(t *testing.T) {
	assert.Equal(t, 0, Path(nil).TopLevel().Depth())
}

func TestUp(t *testing.T) {
	p := NewPath(2, 1)
	require.True(t, p.Up())
	assert.Equal(t, "2", p.String())
	require.True(t, p.Up())
	assert.Equal(t, 0, p.Depth())
	assert.False(t, p.Up())
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("6:3")
	require.NoError(t, err)
	assert.True(t, p.Equal(NewPath(6, 3)))

	p, err = ParsePath(" 0 ")
	require.NoError(t, err)
	assert.True(t, p.Equal(NewPath(0)))

	for _, bad := range []string{"", "a", "1:", "1:-2", "::"} {
		_, err := ParsePath(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	p := NewPath(9, 0, 4)
	back, err := ParsePath(p.String())
	require.NoError(t, err)
	assert.True(t, back.Equal(p))
}
