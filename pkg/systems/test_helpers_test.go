package systems

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/config"
	"github.com/decker502/horizon/pkg/constellation"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/entities"
	"github.com/decker502/horizon/pkg/utils"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// fakePointer 固定输入
type fakePointer struct {
	state utils.InputState
}

func (p *fakePointer) Pointer() utils.InputState {
	return p.state
}

// press 模拟一次按下（设备坐标）
func (p *fakePointer) press(x, y int) {
	p.state = utils.InputState{JustPressed: true, Pressed: true, X: x, Y: y}
}

// release 模拟一次松开（设备坐标）
func (p *fakePointer) release(x, y int) {
	p.state = utils.InputState{JustReleased: true, X: x, Y: y}
}

// idle 指针停留但无按键
func (p *fakePointer) idle(x, y int) {
	p.state = utils.InputState{X: x, Y: y}
}

// 测试画布：位于窗口 (40, 150)，800x400 逻辑像素，设备像素比 2
var testRect = utils.Rect{X: 40, Y: 150, Width: 800, Height: 400}

const testScale = 2.0

// rowOfStars 在 ny=0.5 处水平排列 n 颗星星，间隔 0.1
// 在测试画布上局部坐标为 (80*(i+1), 160)
func rowOfStars(n int) []constellation.Star {
	stars := make([]constellation.Star, n)
	for i := range stars {
		stars[i] = constellation.Star{X: 0.1 * float64(i+1), Y: 0.5, Radius: 1}
	}
	return stars
}

type testWorld struct {
	em            *ecs.EntityManager
	cfg           *config.ConstellationConfig
	constellation ecs.EntityID
	overlay       ecs.EntityID
	stars         []constellation.Star
}

func newTestWorld(stars []constellation.Star) *testWorld {
	em := ecs.NewEntityManager()
	cfg := config.DefaultConstellationConfig()
	entities.NewStarfield(em, stars)
	c := entities.NewConstellation(em)
	o := entities.NewCompletionOverlay(em, cfg.OverlayTitle, config.OverlayWidth, config.OverlayHeight,
		config.OverlayFadeDuration, config.OverlayRiseDistance)

	sc, _ := ecs.GetComponent[*components.SurfaceComponent](em, c)
	sc.Surface = utils.NewSurface(testRect, testScale)

	return &testWorld{em: em, cfg: cfg, constellation: c, overlay: o, stars: stars}
}

func (w *testWorld) state() constellation.State {
	cc, _ := ecs.GetComponent[*components.ConstellationComponent](w.em, w.constellation)
	return cc.State
}

func (w *testWorld) overlayComponent() *components.OverlayComponent {
	oc, _ := ecs.GetComponent[*components.OverlayComponent](w.em, w.overlay)
	return oc
}

// deviceOf 局部逻辑坐标 → 设备坐标
func deviceOf(lx, ly float64) (int, int) {
	s := utils.NewSurface(testRect, testScale)
	x, y := s.LocalToDevice(lx, ly)
	return int(x), int(y)
}
