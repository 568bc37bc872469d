package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/config"
	"github.com/decker502/horizon/pkg/constellation"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/entities"
	"github.com/decker502/horizon/pkg/game"
	"github.com/decker502/horizon/pkg/render"
	"github.com/decker502/horizon/pkg/systems"
	"github.com/decker502/horizon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 页面文字
const (
	eyebrowText  = "THE DREAM · THE HORIZON"
	titleText    = "Connect the constellations"
	subtitleText = "Draw your own path across the night. Each connection is an intention."
	hintText     = "Click nearby stars to connect them."
	touchHint    = "Tap nearby stars to connect them."
	resetText    = "Reset"
)

// 页面配色
var (
	pageBackground = color.NRGBA{R: 9, G: 11, B: 18, A: 255}
	eyebrowColor   = color.NRGBA{R: 221, G: 214, B: 254, A: 204}
	titleColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 242}
	subtitleColor  = color.NRGBA{R: 237, G: 233, B: 254, A: 204}
	hintColor      = color.NRGBA{R: 221, G: 214, B: 254, A: 179}
)

// CanvasFactory 为本帧创建绘制目标
// originX, originY 为 Canvas 原点（视口逻辑像素），scale 为设备像素比
type CanvasFactory func(screen *ebiten.Image, originX, originY, scale float64) render.Canvas

// SceneDeps 场景依赖
type SceneDeps struct {
	Config    *config.ConstellationConfig
	Scheduler *game.FrameScheduler
	Resize    *game.ResizeNotifier

	Pointer utils.PointerSource
	Keys    utils.KeySource

	// Rand 星星生成使用的随机源
	Rand constellation.Source
	// Font 文字字体，为 nil 时不绘制文字
	Font *text.GoTextFaceSource
	// Canvas 为 nil 时使用 ebiten 画布
	Canvas CanvasFactory
}

// label 随窗口宽度重新排版的文字
type label struct {
	entity ecs.EntityID
	place  func(width, height float64) (float64, float64)
	// wrap 为 true 时按内容区宽度换行
	wrap bool
}

// ConstellationScene 星图连线场景
//
// 生命周期：
//   - Mount：首次挂载时生成星星，注册窗口缩放监听，启动渲染循环
//   - Unmount：取消待执行的帧，注销监听
//
// 星星在场景实例上只生成一次；同一实例重新挂载或窗口缩放都不会重新生成。
type ConstellationScene struct {
	deps SceneDeps

	entityManager       *ecs.EntityManager
	constellationEntity ecs.EntityID
	overlayEntity       ecs.EntityID
	resetButton         ecs.EntityID
	labels              []label

	inputSystem    *systems.ConstellationInputSystem
	buttonSystem   *systems.ButtonSystem
	overlaySystem  *systems.OverlaySystem
	renderSystem   *systems.ConstellationRenderSystem
	uiRenderSystem *systems.UIRenderSystem

	ebitenCanvas *render.EbitenCanvas

	stars     []constellation.Star
	generated bool

	mounted     bool
	frame       game.FrameHandle
	unsubscribe func()

	width, height, scale float64
}

// NewConstellationScene 创建星图连线场景
func NewConstellationScene(deps SceneDeps) *ConstellationScene {
	if deps.Config == nil {
		deps.Config = config.DefaultConstellationConfig()
	}

	em := ecs.NewEntityManager()
	s := &ConstellationScene{
		deps:          deps,
		entityManager: em,
		ebitenCanvas:  render.NewEbitenCanvas(deps.Font),
		scale:         1,
	}

	cfg := deps.Config
	s.constellationEntity = entities.NewConstellation(em)
	s.overlayEntity = entities.NewCompletionOverlay(em, cfg.OverlayTitle,
		config.OverlayWidth, config.OverlayHeight,
		config.OverlayFadeDuration, config.OverlayRiseDistance)
	s.resetButton = entities.NewButton(em, 0, 0,
		config.ResetButtonWidth, config.ResetButtonHeight,
		resetText, 14, s.Reset)

	s.addLabel(eyebrowText, 13, eyebrowColor, render.AlignStart, func(w, h float64) (float64, float64) {
		return config.ContentPaddingX, 36
	})
	s.addLabel(titleText, 30, titleColor, render.AlignStart, func(w, h float64) (float64, float64) {
		return config.ContentPaddingX, 60
	})
	s.addLabel(subtitleText, 15, subtitleColor, render.AlignStart, func(w, h float64) (float64, float64) {
		return config.ContentPaddingX, 104
	})
	s.labels[len(s.labels)-1].wrap = true
	hint := hintText
	if utils.IsMobile() {
		hint = touchHint
	}
	// 提示文字紧跟在重置按钮右侧
	s.addLabel(hint, 13, hintColor, render.AlignStart, func(w, h float64) (float64, float64) {
		bx, by := config.ResetButtonPosition(w, h)
		return bx + config.ResetButtonWidth + 16, by + (config.ResetButtonHeight-13)/2
	})

	s.inputSystem = systems.NewConstellationInputSystem(em, deps.Pointer, s.constellationEntity, cfg)
	s.buttonSystem = systems.NewButtonSystem(em, deps.Pointer, s.toViewport)
	s.overlaySystem = systems.NewOverlaySystem(em, s.constellationEntity, s.overlayEntity)
	s.renderSystem = systems.NewConstellationRenderSystem(em, s.constellationEntity, cfg)
	s.uiRenderSystem = systems.NewUIRenderSystem(em, s.constellationEntity, s.overlayEntity)

	return s
}

func (s *ConstellationScene) addLabel(t string, size float64, c color.NRGBA, align render.Align, place func(w, h float64) (float64, float64)) {
	id := entities.NewLabel(s.entityManager, 0, 0, t, size, c, align)
	s.labels = append(s.labels, label{entity: id, place: place})
}

// Mount 挂载场景
func (s *ConstellationScene) Mount() {
	if s.mounted {
		return
	}

	if !s.generated {
		cfg := s.deps.Config
		s.stars = constellation.Generate(s.deps.Rand, cfg.StarCount,
			constellation.RadiusRange{Min: cfg.StarRadius.Min, Max: cfg.StarRadius.Max})
		entities.NewStarfield(s.entityManager, s.stars)
		s.generated = true
		log.Printf("[ConstellationScene] Generated %d stars", len(s.stars))
	}

	if s.deps.Resize != nil {
		s.layout(s.deps.Resize.Current())
		s.unsubscribe = s.deps.Resize.Subscribe(s.layout)
	}
	if s.deps.Scheduler != nil {
		s.frame = s.deps.Scheduler.RequestFrame(s.drawFrame)
	}

	s.mounted = true
	log.Printf("[ConstellationScene] Mounted")
}

// Unmount 卸载场景
// 取消渲染循环后，任何已注册的帧回调都不会再执行
func (s *ConstellationScene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false

	if s.deps.Scheduler != nil {
		s.deps.Scheduler.Cancel(s.frame)
	}
	s.frame = 0

	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	log.Printf("[ConstellationScene] Unmounted")
}

// Update 处理本帧输入
func (s *ConstellationScene) Update(deltaTime float64) {
	if s.deps.Keys != nil && s.deps.Keys.KeyJustPressed(ebiten.KeyR) {
		s.Reset()
	}

	s.buttonSystem.Update(deltaTime)
	s.inputSystem.Update(deltaTime)
	s.overlaySystem.Update(deltaTime)
}

// Reset 清空连线，完成面板立即隐藏
func (s *ConstellationScene) Reset() {
	s.inputSystem.Reset()
	s.overlaySystem.Update(0)
}

// layout 窗口尺寸变化时重新计算画布区域和控件位置
func (s *ConstellationScene) layout(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.width, s.height, s.scale = width, height, scale

	x, y, w, h := config.CanvasRect(width, height)
	if sc, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, s.constellationEntity); ok {
		sc.Surface = utils.NewSurface(utils.Rect{X: x, Y: y, Width: w, Height: h}, scale)
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.resetButton); ok {
		pos.X, pos.Y = config.ResetButtonPosition(width, height)
	}
	for _, l := range s.labels {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, l.entity); ok {
			pos.X, pos.Y = l.place(width, height)
		}
		if tc, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, l.entity); ok && l.wrap {
			tc.MaxWidth = width - 2*config.ContentPaddingX
		}
	}

	bw, bh := s.Surface().BufferSize()
	log.Printf("[ConstellationScene] Layout %.0fx%.0f @%.2fx, canvas buffer %dx%d", width, height, scale, bw, bh)
}

// drawFrame 绘制一帧并请求下一帧
func (s *ConstellationScene) drawFrame(screen *ebiten.Image) {
	s.frame = 0
	if !s.mounted {
		return
	}

	c := s.canvasAt(screen, 0, 0)
	c.FillRect(0, 0, s.width, s.height, pageBackground)

	surface := s.Surface()
	c = s.canvasAt(screen, surface.Rect.X, surface.Rect.Y)
	s.renderSystem.Draw(c)

	c = s.canvasAt(screen, 0, 0)
	s.uiRenderSystem.Draw(c)

	s.frame = s.deps.Scheduler.RequestFrame(s.drawFrame)
}

func (s *ConstellationScene) canvasAt(screen *ebiten.Image, originX, originY float64) render.Canvas {
	if s.deps.Canvas != nil {
		return s.deps.Canvas(screen, originX, originY, s.scale)
	}
	s.ebitenCanvas.Reset(screen, originX, originY, s.scale)
	return s.ebitenCanvas
}

func (s *ConstellationScene) toViewport(x, y int) (float64, float64) {
	return float64(x) / s.scale, float64(y) / s.scale
}

// Stars 返回本场景生成的星星
func (s *ConstellationScene) Stars() []constellation.Star {
	return s.stars
}

// State 返回当前连线状态
func (s *ConstellationScene) State() constellation.State {
	cc, ok := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, s.constellationEntity)
	if !ok {
		return constellation.Reset()
	}
	return cc.State
}

// Surface 返回当前画布几何信息
func (s *ConstellationScene) Surface() utils.Surface {
	sc, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, s.constellationEntity)
	if !ok {
		return utils.Surface{}
	}
	return sc.Surface
}

// OverlayVisible 完成面板是否可见
func (s *ConstellationScene) OverlayVisible() bool {
	oc, ok := ecs.GetComponent[*components.OverlayComponent](s.entityManager, s.overlayEntity)
	return ok && oc.Visible
}

// Mounted 场景是否处于挂载状态
func (s *ConstellationScene) Mounted() bool {
	return s.mounted
}
