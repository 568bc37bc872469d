package entities

import (
	"log"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/constellation"
	"github.com/decker502/horizon/pkg/ecs"
)

// NewStarfield 为每颗星星创建一个实体
// 实体按星星的生成顺序创建，查询时的遍历顺序与生成顺序一致
func NewStarfield(em *ecs.EntityManager, stars []constellation.Star) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(stars))
	for i, s := range stars {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.StarComponent{Star: s, Index: i})
		ids = append(ids, id)
	}
	log.Printf("[Entities] Created %d star entities", len(ids))
	return ids
}

// NewConstellation 创建持有连线状态和画布几何信息的实体
func NewConstellation(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ConstellationComponent{State: constellation.Reset()})
	ecs.AddComponent(em, id, &components.SurfaceComponent{})
	return id
}

// NewCompletionOverlay 创建完成面板实体（初始隐藏）
func NewCompletionOverlay(em *ecs.EntityManager, title string, width, height, duration, rise float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.OverlayComponent{
		Title:        title,
		Width:        width,
		Height:       height,
		Duration:     duration,
		RiseDistance: rise,
		OffsetY:      rise,
	})
	return id
}
