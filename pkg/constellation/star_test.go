package constellation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceSource 按固定序列返回随机数
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestGenerateShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, count := range []int{0, 1, 6, 70, 500} {
		stars := Generate(rng, count, DefaultRadiusRange)
		require.Len(t, stars, count)
		for i, s := range stars {
			assert.GreaterOrEqual(t, s.X, 0.0, "star %d x", i)
			assert.Less(t, s.X, 1.0, "star %d x", i)
			assert.GreaterOrEqual(t, s.Y, 0.0, "star %d y", i)
			assert.Less(t, s.Y, 1.0, "star %d y", i)
			assert.True(t, DefaultRadiusRange.Contains(s.Radius), "star %d radius %.3f", i, s.Radius)
		}
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	stars := Generate(&sequenceSource{values: []float64{0.5}}, -3, DefaultRadiusRange)
	assert.NotNil(t, stars)
	assert.Empty(t, stars)
}

func TestGenerateDrawOrder(t *testing.T) {
	// 每颗星依次消耗 x, y, radius 三个随机数
	src := &sequenceSource{values: []float64{0.1, 0.2, 0.0, 0.7, 0.8, 0.5}}
	stars := Generate(src, 2, RadiusRange{Min: 1, Max: 3})

	require.Len(t, stars, 2)
	assert.Equal(t, Star{X: 0.1, Y: 0.2, Radius: 1}, stars[0])
	assert.Equal(t, Star{X: 0.7, Y: 0.8, Radius: 2}, stars[1])
}

func TestStarPosition(t *testing.T) {
	s := Star{X: 0.5, Y: 0.5, Radius: 1}
	p := s.Position(800, 400, 0.8)
	assert.InDelta(t, 400, p.X, 1e-9)
	assert.InDelta(t, 160, p.Y, 1e-9)
}
