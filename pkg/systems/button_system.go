package systems

import (
	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/utils"
)

// ViewportMapper 把指针设备坐标换算为视口逻辑坐标
type ViewportMapper func(x, y int) (float64, float64)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测松开（在按钮内松开时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
	toViewport    ViewportMapper
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, pointer utils.PointerSource, toViewport ViewportMapper) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		pointer:       pointer,
		toViewport:    toViewport,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	if s.pointer == nil {
		return
	}
	in := s.pointer.Pointer()

	px, py := float64(in.X), float64(in.Y)
	if s.toViewport != nil {
		px, py = s.toViewport(in.X, in.Y)
	}

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		rect := utils.Rect{X: pos.X, Y: pos.Y, Width: button.Width, Height: button.Height}
		if !rect.Contains(px, py) {
			button.State = components.UINormal
			continue
		}

		switch {
		case in.JustReleased:
			// 松开瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		case in.Pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}
}
