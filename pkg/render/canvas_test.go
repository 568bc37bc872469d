package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 编译期检查
var (
	_ Canvas = (*EbitenCanvas)(nil)
	_ Canvas = (*Recorder)(nil)
)

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 200}

	assert.Equal(t, c, WithAlpha(c, 1))
	assert.Equal(t, c, WithAlpha(c, 3))
	assert.Equal(t, uint8(0), WithAlpha(c, 0).A)
	assert.Equal(t, uint8(0), WithAlpha(c, -1).A)
	assert.Equal(t, uint8(100), WithAlpha(c, 0.5).A)
	assert.Equal(t, uint8(10), WithAlpha(c, 0.5).R, "color channels keep straight alpha")
}

func TestLerpColor(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 100, G: 100, B: 0, A: 255}

	assert.Equal(t, a, lerpColor(a, b, 0))
	assert.Equal(t, b, lerpColor(a, b, 1))
	assert.Equal(t, color.NRGBA{R: 50, G: 100, B: 100, A: 255}, lerpColor(a, b, 0.5))
}

func TestEbitenCanvasWithoutTarget(t *testing.T) {
	// 未绑定目标图像时所有绘制都是空操作
	c := NewEbitenCanvas(nil)
	c.Clear(0, 0, 10, 10)
	c.FillRect(0, 0, 10, 10, color.White)
	c.FillVerticalGradient(0, 0, 10, 10, color.White, color.Black)
	c.FillCircle(1, 1, 1, color.White)
	c.StrokeLine(0, 0, 1, 1, 1, color.White)
	c.StrokeRect(0, 0, 1, 1, 1, color.White)
	c.DrawText("hi", 0, 0, 12, color.White, AlignCenter)
	assert.Nil(t, c.dst)
}

func TestEbitenCanvasTransform(t *testing.T) {
	c := NewEbitenCanvas(nil)
	c.Reset(nil, 0, 150, 2)
	assert.Equal(t, float32(20), c.dx(10))
	assert.Equal(t, float32(320), c.dy(10))
	assert.Equal(t, float32(2.4), c.ds(1.2))

	c.Reset(nil, 0, 0, 0)
	assert.Equal(t, 1.0, c.scale)
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Clear(0, 0, 1, 1)
	r.FillCircle(1, 2, 3, color.White)
	r.FillCircle(4, 5, 6, color.White)
	r.DrawText("x", 0, 0, 10, color.White, AlignEnd)

	assert.Equal(t, []string{"clear", "circle", "circle", "text"}, r.Kinds())
	assert.Equal(t, 2, r.Count("circle"))
	assert.Equal(t, []float64{4, 5, 6}, r.Filter("circle")[1].Args)

	r.Reset()
	assert.Empty(t, r.Ops)
}

func TestMeasureText(t *testing.T) {
	assert.Zero(t, NewEbitenCanvas(nil).MeasureText("hi", 12))

	r := &Recorder{}
	assert.Equal(t, 12.0, r.MeasureText("hi", 12))
	assert.Empty(t, r.Ops, "measuring does not draw")
}
