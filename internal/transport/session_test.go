package transport

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionLifecycle(t *testing.T) {
	t.Run("empty id gets a generated one", func(t *testing.T) {
		s := NewSession("")
		assert.NotEmpty(t, s.ID())
	})

	t.Run("send fails after close", func(t *testing.T) {
		s := NewSession("s1")
		require.NoError(t, s.Send(Message(`{}`)))
		s.Close()
		assert.ErrorIs(t, s.Send(Message(`{}`)), ErrSessionClosed)
	})

	t.Run("messages after close are dropped", func(t *testing.T) {
		s := NewSession("s1")
		var received []Message
		s.OnMessage(func(m Message) { received = append(received, m) })

		s.HandleMessage(Message("one"))
		s.Close()
		s.HandleMessage(Message("two"))

		require.Len(t, received, 1)
		assert.Equal(t, Message("one"), received[0])
	})

	t.Run("close callbacks fire once in order", func(t *testing.T) {
		s := NewSession("s1")
		var order []int
		s.OnClose(func() { order = append(order, 1) })
		s.OnClose(func() { order = append(order, 2) })

		s.Close()
		s.Close()

		assert.Equal(t, []int{1, 2}, order)
		assert.True(t, s.Closed())
	})

	t.Run("registering OnClose after close is a no-op", func(t *testing.T) {
		s := NewSession("s1")
		s.Close()
		fired := false
		s.OnClose(func() { fired = true })
		s.Close()
		assert.False(t, fired)
	})
}

func TestManager(t *testing.T) {
	t.Run("open tracks and close removes", func(t *testing.T) {
		m := NewManager(testLogger())
		s := m.Open("abc")
		got, ok := m.Get("abc")
		require.True(t, ok)
		assert.Same(t, s, got)
		assert.Equal(t, 1, m.Count())

		s.Close()
		_, ok = m.Get("abc")
		assert.False(t, ok)
		assert.Equal(t, 0, m.Count())
	})

	t.Run("close all", func(t *testing.T) {
		m := NewManager(testLogger())
		s1 := m.Open("a")
		s2 := m.Open("b")
		m.CloseAll()
		assert.True(t, s1.Closed())
		assert.True(t, s2.Closed())
		assert.Equal(t, 0, m.Count())
	})
}
