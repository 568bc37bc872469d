// Package utils 提供通用工具函数
//
// surface.go 集中处理画布相关的坐标转换，避免在渲染和点击检测中各自换算。
//
// # 坐标系统概述
//
//   - **归一化坐标**：星星位置，[0, 1) 区间，相对画布逻辑宽高
//   - **视口坐标**：相对窗口左上角的逻辑像素（与设备像素比无关）
//   - **局部坐标**：相对画布左上角的逻辑像素，所有绘制与命中检测都在此坐标系下进行
//   - **设备坐标**：后备缓冲区中的物理像素，= 视口坐标 × Scale
//
// # 核心转换公式
//
//	localX  = nx * Width
//	localY  = ny * Height * compression
//	deviceX = (Rect.X + localX) * Scale
//	deviceY = (Rect.Y + localY) * Scale
package utils

import "math"

// Rect 逻辑像素矩形
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Surface 画布几何信息
// 每次窗口缩放或挂载时重新计算
type Surface struct {
	Rect  Rect    // 画布在窗口中的位置和尺寸（逻辑像素）
	Scale float64 // 设备像素比
}

// NewSurface 创建画布几何信息
// scale <= 0 时按 1 处理
func NewSurface(rect Rect, scale float64) Surface {
	if scale <= 0 {
		scale = 1
	}
	return Surface{Rect: rect, Scale: scale}
}

// Measured 画布是否已获得有效尺寸
// 未测量的画布上，渲染和点击检测都应当跳过
func (s Surface) Measured() bool {
	return s.Rect.Width > 0 && s.Rect.Height > 0 && s.Scale > 0
}

// NormalizedToLocal 归一化坐标 → 局部逻辑坐标
func (s Surface) NormalizedToLocal(nx, ny, compression float64) (float64, float64) {
	return nx * s.Rect.Width, ny * s.Rect.Height * compression
}

// LocalToDevice 局部逻辑坐标 → 设备坐标
func (s Surface) LocalToDevice(x, y float64) (float64, float64) {
	return (s.Rect.X + x) * s.Scale, (s.Rect.Y + y) * s.Scale
}

// DeviceToViewport 设备坐标 → 视口逻辑坐标
func (s Surface) DeviceToViewport(px, py float64) (float64, float64) {
	if s.Scale <= 0 {
		return px, py
	}
	return px / s.Scale, py / s.Scale
}

// ViewportToLocal 视口逻辑坐标 → 局部逻辑坐标
func (s Surface) ViewportToLocal(vx, vy float64) (float64, float64) {
	return vx - s.Rect.X, vy - s.Rect.Y
}

// BufferSize 返回画布后备缓冲区尺寸（设备像素）
func (s Surface) BufferSize() (int, int) {
	if !s.Measured() {
		return 0, 0
	}
	return int(math.Ceil(s.Rect.Width * s.Scale)), int(math.Ceil(s.Rect.Height * s.Scale))
}
