package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColoredLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("ROBOT", "", &buf)
	require.NoError(t, err)

	t.Run("info", func(t *testing.T) {
		buf.Reset()
		l.Info("executed 2 commands")
		assert.Contains(t, buf.String(), "[ROBOT]")
		assert.Contains(t, buf.String(), "[INFO]")
		assert.Contains(t, buf.String(), "executed 2 commands")
	})

	t.Run("warning", func(t *testing.T) {
		buf.Reset()
		l.Warning("cache unavailable")
		assert.Contains(t, buf.String(), "[WARNING]")
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		l.Error("store failed")
		assert.Contains(t, buf.String(), "[ERROR]")
		assert.Contains(t, buf.String(), "store failed")
	})
}

func TestNewRejectsEmptyPrefix(t *testing.T) {
	_, err := New("", "", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyPrefix)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nothing to see")
	})
}
