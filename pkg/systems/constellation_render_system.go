package systems

import (
	"image/color"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/config"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/render"
)

// ConstellationRenderSystem 星图渲染系统
//
// 每帧绘制顺序：
//  1. 清空画布
//  2. 背景渐变（上下两色）
//  3. 星星（纵向压缩后的位置）
//  4. 连线（至少两个点时）
//  5. 底部地平线色带
//
// 只读取星星和连线状态，不做任何修改。Canvas 原点为画布左上角。
type ConstellationRenderSystem struct {
	entityManager       *ecs.EntityManager
	constellationEntity ecs.EntityID

	compression     float64
	horizonFraction float64
	strokeWidth     float64

	backgroundTop    color.NRGBA
	backgroundBottom color.NRGBA
	starColor        color.NRGBA
	pathColor        color.NRGBA
	horizonColor     color.NRGBA
}

// NewConstellationRenderSystem 创建星图渲染系统
func NewConstellationRenderSystem(em *ecs.EntityManager, constellationEntity ecs.EntityID, cfg *config.ConstellationConfig) *ConstellationRenderSystem {
	return &ConstellationRenderSystem{
		entityManager:       em,
		constellationEntity: constellationEntity,
		compression:         cfg.VerticalCompression,
		horizonFraction:     cfg.HorizonFraction,
		strokeWidth:         cfg.StrokeWidth,
		backgroundTop:       cfg.Colors.BackgroundTop.NRGBA,
		backgroundBottom:    cfg.Colors.BackgroundBottom.NRGBA,
		starColor:           cfg.Colors.Star.NRGBA,
		pathColor:           cfg.Colors.Path.NRGBA,
		horizonColor:        cfg.Colors.Horizon.NRGBA,
	}
}

// Draw 绘制一帧
// 画布尚未测量时不绘制
func (s *ConstellationRenderSystem) Draw(c render.Canvas) {
	sc, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, s.constellationEntity)
	if !ok || !sc.Surface.Measured() {
		return
	}
	cc, ok := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, s.constellationEntity)
	if !ok {
		return
	}

	surface := sc.Surface
	width, height := surface.Rect.Width, surface.Rect.Height

	c.Clear(0, 0, width, height)
	c.FillVerticalGradient(0, 0, width, height, s.backgroundTop, s.backgroundBottom)

	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager) {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		x, y := surface.NormalizedToLocal(star.Star.X, star.Star.Y, s.compression)
		c.FillCircle(x, y, star.Star.Radius, s.starColor)
	}

	selection := cc.State.Selection
	if len(selection) >= 2 {
		for i := 1; i < len(selection); i++ {
			prev, cur := selection[i-1], selection[i]
			c.StrokeLine(prev.X, prev.Y, cur.X, cur.Y, s.strokeWidth, s.pathColor)
		}
	}

	horizonY := height * (1 - s.horizonFraction)
	c.FillRect(0, horizonY, width, height-horizonY, s.horizonColor)
}
