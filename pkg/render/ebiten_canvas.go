package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadDefaultFont 加载内置的 Go Regular 字体
func LoadDefaultFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}
	return src, nil
}

const maxCachedGradients = 16

// gradientKey 渐变缓存键
type gradientKey struct {
	height      int
	top, bottom color.NRGBA
}

// EbitenCanvas 基于 ebiten 的 Canvas 实现
//
// 设备坐标 = (Origin + 逻辑坐标) × Scale。
// 每帧通过 Reset 绑定新的目标图像。
type EbitenCanvas struct {
	dst              *ebiten.Image
	originX, originY float64
	scale            float64
	font             *text.GoTextFaceSource

	gradients map[gradientKey]*ebiten.Image
}

// NewEbitenCanvas 创建 ebiten 画布
// font 为 nil 时 DrawText 不绘制任何内容
func NewEbitenCanvas(font *text.GoTextFaceSource) *EbitenCanvas {
	return &EbitenCanvas{
		font:      font,
		scale:     1,
		gradients: make(map[gradientKey]*ebiten.Image),
	}
}

// Reset 绑定本帧的目标图像和坐标变换
func (c *EbitenCanvas) Reset(dst *ebiten.Image, originX, originY, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.dst = dst
	c.originX, c.originY = originX, originY
	c.scale = scale
}

func (c *EbitenCanvas) dx(x float64) float32 { return float32((c.originX + x) * c.scale) }
func (c *EbitenCanvas) dy(y float64) float32 { return float32((c.originY + y) * c.scale) }
func (c *EbitenCanvas) ds(v float64) float32 { return float32(v * c.scale) }

// Clear 清空矩形区域
func (c *EbitenCanvas) Clear(x, y, w, h float64) {
	if c.dst == nil {
		return
	}
	r := image.Rect(
		int(math.Floor(float64(c.dx(x)))), int(math.Floor(float64(c.dy(y)))),
		int(math.Ceil(float64(c.dx(x+w)))), int(math.Ceil(float64(c.dy(y+h)))),
	).Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	c.dst.SubImage(r).(*ebiten.Image).Clear()
}

// FillRect 填充矩形
func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	if c.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, c.dx(x), c.dy(y), c.ds(w), c.ds(h), clr, false)
}

// FillVerticalGradient 自上而下填充渐变
// 渐变条带缓存为 1 像素宽的图像，按高度和颜色复用
func (c *EbitenCanvas) FillVerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	if c.dst == nil || w <= 0 || h <= 0 {
		return
	}
	rows := int(math.Ceil(h * c.scale))
	if rows <= 0 {
		return
	}

	key := gradientKey{
		height: rows,
		top:    color.NRGBAModel.Convert(top).(color.NRGBA),
		bottom: color.NRGBAModel.Convert(bottom).(color.NRGBA),
	}
	img, ok := c.gradients[key]
	if !ok {
		// 窗口缩放会产生新的高度，缓存过大时整体清空
		if len(c.gradients) >= maxCachedGradients {
			for k, old := range c.gradients {
				old.Deallocate()
				delete(c.gradients, k)
			}
		}
		img = buildGradient(key)
		c.gradients[key] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(c.ds(w)), 1)
	op.GeoM.Translate(float64(c.dx(x)), float64(c.dy(y)))
	c.dst.DrawImage(img, op)
}

func buildGradient(key gradientKey) *ebiten.Image {
	img := ebiten.NewImage(1, key.height)
	pix := make([]byte, 4*key.height)
	for row := 0; row < key.height; row++ {
		t := 0.0
		if key.height > 1 {
			t = float64(row) / float64(key.height-1)
		}
		n := lerpColor(key.top, key.bottom, t)
		// WritePixels 需要预乘 alpha
		a := float64(n.A) / 255
		pix[4*row+0] = uint8(float64(n.R)*a + 0.5)
		pix[4*row+1] = uint8(float64(n.G)*a + 0.5)
		pix[4*row+2] = uint8(float64(n.B)*a + 0.5)
		pix[4*row+3] = n.A
	}
	img.WritePixels(pix)
	return img
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// FillCircle 填充圆
func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if c.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, c.dx(cx), c.dy(cy), c.ds(r), clr, true)
}

// StrokeLine 绘制线段
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if c.dst == nil || width <= 0 {
		return
	}
	vector.StrokeLine(c.dst, c.dx(x0), c.dy(y0), c.dx(x1), c.dy(y1), c.ds(width), clr, true)
}

// StrokeRect 绘制矩形边框
func (c *EbitenCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	if c.dst == nil || width <= 0 {
		return
	}
	vector.StrokeRect(c.dst, c.dx(x), c.dy(y), c.ds(w), c.ds(h), c.ds(width), clr, true)
}

// DrawText 绘制单行文字
func (c *EbitenCanvas) DrawText(s string, x, y, size float64, clr color.Color, align Align) {
	if c.dst == nil || c.font == nil || s == "" {
		return
	}
	face := &text.GoTextFace{Source: c.font, Size: size * c.scale}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(c.dx(x)), float64(c.dy(y)))
	op.ColorScale.ScaleWithColor(clr)
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignEnd:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(c.dst, s, face, op)
}

// MeasureText 测量单行文字宽度（逻辑像素）
func (c *EbitenCanvas) MeasureText(s string, size float64) float64 {
	if c.font == nil || s == "" {
		return 0
	}
	w, _ := text.Measure(s, &text.GoTextFace{Source: c.font, Size: size}, 0)
	return w
}
