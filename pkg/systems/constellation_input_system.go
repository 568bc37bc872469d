package systems

import (
	"log"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/config"
	"github.com/decker502/horizon/pkg/constellation"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/utils"
)

// ConstellationInputSystem 星图点击系统
//
// 职责：
//   - 把指针位置（设备像素）换算为画布局部逻辑坐标
//   - 吸附到最近的星星，距离小于吸附半径时追加连线点
//   - 连线点数达到阈值时标记完成
//   - 执行重置
//
// 画布未测量、点击落在画布外、或完成面板遮住画布时，点击被忽略。
type ConstellationInputSystem struct {
	entityManager       *ecs.EntityManager
	pointer             utils.PointerSource
	constellationEntity ecs.EntityID

	snapRadius  float64
	compression float64
	threshold   int
}

// NewConstellationInputSystem 创建星图点击系统
func NewConstellationInputSystem(
	em *ecs.EntityManager,
	pointer utils.PointerSource,
	constellationEntity ecs.EntityID,
	cfg *config.ConstellationConfig,
) *ConstellationInputSystem {
	return &ConstellationInputSystem{
		entityManager:       em,
		pointer:             pointer,
		constellationEntity: constellationEntity,
		snapRadius:          cfg.SnapRadius,
		compression:         cfg.VerticalCompression,
		threshold:           cfg.CompletionThreshold,
	}
}

// Update 处理本帧的点击
func (s *ConstellationInputSystem) Update(deltaTime float64) {
	if s.pointer == nil {
		return
	}
	in := s.pointer.Pointer()
	if !in.JustPressed {
		return
	}

	cc, ok := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, s.constellationEntity)
	if !ok {
		return
	}
	// 完成面板覆盖整个画布，画布收不到点击
	if cc.State.Complete {
		return
	}

	sc, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, s.constellationEntity)
	if !ok || !sc.Surface.Measured() {
		return
	}

	vx, vy := sc.Surface.DeviceToViewport(float64(in.X), float64(in.Y))
	if !sc.Surface.Rect.Contains(vx, vy) {
		return
	}
	s.HandleClick(vx, vy)
}

// HandleClick 处理一次点击（视口逻辑坐标）
// 返回是否追加了连线点
func (s *ConstellationInputSystem) HandleClick(viewportX, viewportY float64) bool {
	cc, ok := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, s.constellationEntity)
	if !ok {
		return false
	}
	sc, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, s.constellationEntity)
	if !ok || !sc.Surface.Measured() {
		return false
	}

	surface := sc.Surface
	lx, ly := surface.ViewportToLocal(viewportX, viewportY)

	p, hit := constellation.Snap(
		CollectStars(s.entityManager),
		constellation.Point{X: lx, Y: ly},
		surface.Rect.Width, surface.Rect.Height,
		s.compression, s.snapRadius,
	)
	if !hit {
		return false
	}

	wasComplete := cc.State.Complete
	cc.State = constellation.Append(cc.State, p, s.threshold)
	log.Printf("[ConstellationInputSystem] Selected star at (%.1f, %.1f), %d/%d points",
		p.X, p.Y, cc.State.Len(), s.threshold)

	if cc.State.Complete && !wasComplete {
		log.Printf("[ConstellationInputSystem] Constellation complete (round %d)", cc.Resets+1)
	}
	return true
}

// Reset 清空连线并回到 Drawing 状态
func (s *ConstellationInputSystem) Reset() {
	cc, ok := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, s.constellationEntity)
	if !ok {
		return
	}
	if cc.State.Len() == 0 && !cc.State.Complete {
		return
	}
	cc.State = constellation.Reset()
	cc.Resets++
	log.Printf("[ConstellationInputSystem] Reset (round %d)", cc.Resets+1)
}

// CollectStars 按生成顺序收集所有星星
func CollectStars(em *ecs.EntityManager) []constellation.Star {
	ids := ecs.GetEntitiesWith1[*components.StarComponent](em)
	stars := make([]constellation.Star, 0, len(ids))
	for _, id := range ids {
		sc, _ := ecs.GetComponent[*components.StarComponent](em, id)
		stars = append(stars, sc.Star)
	}
	return stars
}
