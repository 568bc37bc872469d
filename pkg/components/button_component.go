package components

import "image/color"

// ButtonComponent 按钮组件
// 包含按钮的外观、文字、状态和点击回调
//
// 按钮位置由 PositionComponent 给出（左上角，视口逻辑像素）。
type ButtonComponent struct {
	// Text 按钮文字
	Text string
	// FontSize 文字大小（逻辑像素）
	FontSize float64

	// Width, Height 按钮尺寸（逻辑像素）
	Width  float64
	Height float64

	// TextColor 文字颜色
	TextColor color.NRGBA
	// FillColor 背景颜色（正常状态）
	FillColor color.NRGBA
	// HoverFillColor 背景颜色（悬停/按下状态）
	HoverFillColor color.NRGBA
	// BorderColor 边框颜色
	BorderColor color.NRGBA

	// State 当前交互状态
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调，在指针于按钮内松开时触发
	OnClick func()
}
