package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizeNotifier(t *testing.T) {
	rn := NewResizeNotifier()
	var got [][3]float64
	var order []int

	unsubA := rn.Subscribe(func(w, h, s float64) {
		got = append(got, [3]float64{w, h, s})
		order = append(order, 1)
	})
	unsubB := rn.Subscribe(func(w, h, s float64) { order = append(order, 2) })
	assert.Equal(t, 2, rn.Subscribers())

	assert.True(t, rn.Changed(800, 600, 2))
	rn.Notify(800, 600, 2)
	assert.False(t, rn.Changed(800, 600, 2))
	assert.Equal(t, [][3]float64{{800, 600, 2}}, got)
	assert.Equal(t, []int{1, 2}, order)

	unsubA()
	unsubA() // idempotent
	rn.Notify(1024, 768, 1)
	assert.Len(t, got, 1, "unsubscribed callback must not run")
	assert.Equal(t, []int{1, 2, 2}, order)

	w, h, s := rn.Current()
	assert.Equal(t, [3]float64{1024, 768, 1}, [3]float64{w, h, s})

	unsubB()
	assert.Zero(t, rn.Subscribers())
}

func TestResizeNotifierUnsubscribeDuringNotify(t *testing.T) {
	rn := NewResizeNotifier()
	calls := 0
	var unsub func()
	unsub = rn.Subscribe(func(float64, float64, float64) {
		calls++
		unsub()
	})
	rn.Subscribe(func(float64, float64, float64) { calls++ })

	rn.Notify(1, 1, 1)
	rn.Notify(2, 2, 1)
	assert.Equal(t, 3, calls)
}
