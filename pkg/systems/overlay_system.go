package systems

import (
	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/utils"
)

// OverlaySystem 完成面板系统
// 面板可见性是连线状态 Complete 的纯函数；显示后按 EaseOutCubic 淡入上浮
type OverlaySystem struct {
	entityManager       *ecs.EntityManager
	constellationEntity ecs.EntityID
	overlayEntity       ecs.EntityID
}

// NewOverlaySystem 创建完成面板系统
func NewOverlaySystem(em *ecs.EntityManager, constellationEntity, overlayEntity ecs.EntityID) *OverlaySystem {
	return &OverlaySystem{
		entityManager:       em,
		constellationEntity: constellationEntity,
		overlayEntity:       overlayEntity,
	}
}

// Update 同步面板可见性并推进淡入动画
func (s *OverlaySystem) Update(deltaTime float64) {
	cc, ok := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, s.constellationEntity)
	if !ok {
		return
	}
	oc, ok := ecs.GetComponent[*components.OverlayComponent](s.entityManager, s.overlayEntity)
	if !ok {
		return
	}

	if !cc.State.Complete {
		oc.Visible = false
		oc.Elapsed = 0
		oc.Opacity = 0
		oc.OffsetY = oc.RiseDistance
		return
	}

	if !oc.Visible {
		oc.Visible = true
		oc.Elapsed = 0
	} else {
		oc.Elapsed += deltaTime
	}

	progress := 1.0
	if oc.Duration > 0 {
		progress = utils.EaseOutCubic(utils.Clamp01(oc.Elapsed / oc.Duration))
	}
	oc.Opacity = progress
	oc.OffsetY = utils.Lerp(oc.RiseDistance, 0, progress)
}
