package systems

import (
	"image/color"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/render"
	"github.com/decker502/horizon/pkg/utils"
)

// 画布上方的装饰遮罩：透明 → indigo 10% → 黑色 40%
var (
	veilTop    = color.NRGBA{R: 99, G: 102, B: 241, A: 0}
	veilMiddle = color.NRGBA{R: 99, G: 102, B: 241, A: 26}
	veilBottom = color.NRGBA{R: 0, G: 0, B: 0, A: 102}
)

// 完成面板配色
var (
	overlayFill   = color.NRGBA{R: 0, G: 0, B: 0, A: 77}
	overlayBorder = color.NRGBA{R: 196, G: 181, B: 253, A: 51}
	overlayText   = color.NRGBA{R: 237, G: 233, B: 254, A: 230}
)

const (
	overlayTitleSize = 24.0
	// labelLineHeight 多行文字的行高（相对字号）
	labelLineHeight = 1.4
)

// UIRenderSystem 界面渲染系统
// 绘制文字标签、画布遮罩、按钮和完成面板。Canvas 原点为窗口左上角
type UIRenderSystem struct {
	entityManager       *ecs.EntityManager
	constellationEntity ecs.EntityID
	overlayEntity       ecs.EntityID
}

// NewUIRenderSystem 创建界面渲染系统
func NewUIRenderSystem(em *ecs.EntityManager, constellationEntity, overlayEntity ecs.EntityID) *UIRenderSystem {
	return &UIRenderSystem{
		entityManager:       em,
		constellationEntity: constellationEntity,
		overlayEntity:       overlayEntity,
	}
}

// Draw 绘制一帧
func (s *UIRenderSystem) Draw(c render.Canvas) {
	s.drawLabels(c)
	s.drawVeilAndOverlay(c)
	s.drawButtons(c)
}

func (s *UIRenderSystem) drawLabels(c render.Canvas) {
	for _, id := range ecs.GetEntitiesWith2[*components.TextComponent, *components.PositionComponent](s.entityManager) {
		tc, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		lines := utils.WrapText(tc.Text, tc.MaxWidth, func(line string) float64 {
			return c.MeasureText(line, tc.Size)
		})
		for i, line := range lines {
			c.DrawText(line, pos.X, pos.Y+float64(i)*tc.Size*labelLineHeight, tc.Size, tc.Color, tc.Align)
		}
	}
}

func (s *UIRenderSystem) drawVeilAndOverlay(c render.Canvas) {
	sc, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, s.constellationEntity)
	if !ok || !sc.Surface.Measured() {
		return
	}
	r := sc.Surface.Rect

	half := r.Height / 2
	c.FillVerticalGradient(r.X, r.Y, r.Width, half, veilTop, veilMiddle)
	c.FillVerticalGradient(r.X, r.Y+half, r.Width, r.Height-half, veilMiddle, veilBottom)

	oc, ok := ecs.GetComponent[*components.OverlayComponent](s.entityManager, s.overlayEntity)
	if !ok || !oc.Visible || oc.Opacity <= 0 {
		return
	}

	x := r.X + (r.Width-oc.Width)/2
	y := r.Y + (r.Height-oc.Height)/2 + oc.OffsetY
	c.FillRect(x, y, oc.Width, oc.Height, render.WithAlpha(overlayFill, oc.Opacity))
	c.StrokeRect(x, y, oc.Width, oc.Height, 1, render.WithAlpha(overlayBorder, oc.Opacity))
	c.DrawText(oc.Title, x+oc.Width/2, y+(oc.Height-overlayTitleSize)/2, overlayTitleSize,
		render.WithAlpha(overlayText, oc.Opacity), render.AlignCenter)
}

func (s *UIRenderSystem) drawButtons(c render.Canvas) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		fill := button.FillColor
		if button.State == components.UIHovered || button.State == components.UIClicked {
			fill = button.HoverFillColor
		}
		textColor := button.TextColor
		if button.State == components.UIDisabled {
			textColor = render.WithAlpha(textColor, 0.5)
		}

		c.FillRect(pos.X, pos.Y, button.Width, button.Height, fill)
		c.StrokeRect(pos.X, pos.Y, button.Width, button.Height, 1, button.BorderColor)
		c.DrawText(button.Text, pos.X+button.Width/2, pos.Y+(button.Height-button.FontSize)/2,
			button.FontSize, textColor, render.AlignCenter)
	}
}
