package entities

import (
	"image/color"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/ecs"
)

// 按钮默认配色（半透明白底、淡紫边框）
var (
	buttonTextColor   = color.NRGBA{R: 237, G: 233, B: 254, A: 230}
	buttonFillColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 13}
	buttonHoverColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	buttonBorderColor = color.NRGBA{R: 196, G: 181, B: 253, A: 51}
)

// NewButton 创建文字按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角位置（视口逻辑像素）
//   - width, height: 按钮尺寸
//   - text: 按钮文字
//   - fontSize: 文字大小
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButton(
	em *ecs.EntityManager,
	x, y float64,
	width, height float64,
	text string,
	fontSize float64,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:           text,
		FontSize:       fontSize,
		Width:          width,
		Height:         height,
		TextColor:      buttonTextColor,
		FillColor:      buttonFillColor,
		HoverFillColor: buttonHoverColor,
		BorderColor:    buttonBorderColor,
		State:          components.UINormal,
		Enabled:        true,
		OnClick:        onClick,
	})

	return entity
}
