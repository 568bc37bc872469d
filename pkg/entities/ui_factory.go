package entities

import (
	"image/color"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/render"
)

// NewLabel 创建静态文字实体
// x, y 为文字锚点（视口逻辑像素），y 为文字顶部
func NewLabel(em *ecs.EntityManager, x, y float64, text string, size float64, c color.NRGBA, align render.Align) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.TextComponent{
		Text:  text,
		Size:  size,
		Color: c,
		Align: align,
	})
	return id
}
