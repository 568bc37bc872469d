package components

import (
	"image/color"

	"github.com/decker502/horizon/pkg/render"
)

// TextComponent 静态文字标签
// 位置由 PositionComponent 给出，Y 为文字顶部
type TextComponent struct {
	Text  string
	Size  float64
	Color color.NRGBA
	Align render.Align
	// MaxWidth 大于 0 时按该宽度自动换行
	MaxWidth float64
}
