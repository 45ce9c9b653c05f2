package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/container"
)

func TestRingInit(t *testing.T) {
	r := container.NewRing[int](4)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 4, r.Cap())
}

func TestRingPushAndAt(t *testing.T) {
	r := container.NewRing[int](4)

	// 1, 2, 3
	r.Push(1)
	r.Push(2)
	r.Push(3)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 1, r.At(0))
	assert.Equal(t, 2, r.At(1))
	assert.Equal(t, 3, r.At(2))

	// 1, 2, 3, 4
	r.Push(4)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 1, r.At(0))
	assert.Equal(t, 4, r.At(3))

	// 2, 3, 4, 5（覆盖最旧的1）
	r.Push(5)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 2, r.At(0))
	assert.Equal(t, 5, r.At(3))

	// 4, 5, 6, 7
	r.Push(6)
	r.Push(7)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 4, r.At(0))
	assert.Equal(t, 5, r.At(1))
	assert.Equal(t, 6, r.At(2))
	assert.Equal(t, 7, r.At(3))
}

func TestRingAtOutOfRange(t *testing.T) {
	r := container.NewRing[int](2)
	r.Push(1)
	assert.Panics(t, func() { r.At(1) })
	assert.Panics(t, func() { r.At(-1) })
}

func TestRingBadCapacity(t *testing.T) {
	assert.Panics(t, func() { container.NewRing[int](0) })
}
