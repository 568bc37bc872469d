// Package render 提供画布绘制接口
//
// 系统只依赖 Canvas 接口，坐标均为逻辑像素；
// EbitenCanvas 负责把逻辑像素换算为后备缓冲区的设备像素（相当于 setTransform(dpr)），
// Recorder 记录绘制命令，供测试断言使用。
package render

import (
	"image/color"
)

// Align 文字水平对齐方式
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Canvas 绘制接口
// 所有坐标和尺寸均为相对 Canvas 原点的逻辑像素
type Canvas interface {
	// Clear 清空矩形区域（变为完全透明）
	Clear(x, y, w, h float64)
	// FillRect 填充矩形
	FillRect(x, y, w, h float64, c color.Color)
	// FillVerticalGradient 自上而下填充两色线性渐变
	FillVerticalGradient(x, y, w, h float64, top, bottom color.Color)
	// FillCircle 填充圆
	FillCircle(cx, cy, r float64, c color.Color)
	// StrokeLine 绘制线段
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	// StrokeRect 绘制矩形边框
	StrokeRect(x, y, w, h, width float64, c color.Color)
	// DrawText 绘制单行文字，y 为文字顶部
	DrawText(s string, x, y, size float64, c color.Color, align Align)
	// MeasureText 返回单行文字的宽度（逻辑像素）
	MeasureText(s string, size float64) float64
}

// WithAlpha 按不透明度缩放颜色的 alpha
func WithAlpha(c color.Color, opacity float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if opacity <= 0 {
		n.A = 0
		return n
	}
	if opacity >= 1 {
		return n
	}
	n.A = uint8(float64(n.A)*opacity + 0.5)
	return n
}
