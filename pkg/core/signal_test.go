package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_SetNotifiesOnChange(t *testing.T) {
	sig := NewSignal(false)
	assert.False(t, sig.Value())

	var got []bool
	sig.Subscribe(func(v bool) { got = append(got, v) })

	sig.Set(false)
	assert.Empty(t, got, "equal value does not notify")

	sig.Set(true)
	sig.Set(true)
	sig.Set(false)
	assert.Equal(t, []bool{true, false}, got)
	assert.False(t, sig.Value())
}

func TestSignal_SubscriptionOrderAndUnsubscribe(t *testing.T) {
	sig := NewSignal("")
	var order []string
	unsubA := sig.Subscribe(func(string) { order = append(order, "a") })
	sig.Subscribe(func(string) { order = append(order, "b") })
	sig.Subscribe(nil)

	sig.Set("x")
	assert.Equal(t, []string{"a", "b"}, order)

	unsubA()
	unsubA()
	assert.Equal(t, 1, sig.ListenerCount())

	sig.Set("y")
	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestSignal_UnsubscribeDuringNotify(t *testing.T) {
	sig := NewSignal(0)
	calls := 0
	var unsub func()
	unsub = sig.Subscribe(func(int) {
		calls++
		unsub()
	})
	other := 0
	sig.Subscribe(func(int) { other++ })

	sig.Set(1)
	sig.Set(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}
