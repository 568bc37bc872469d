package systems

import (
	"testing"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/constellation"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 点击星星正上方：选中该星星的位置
func TestInputSystem_ClickOnStar(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	target := w.stars[5].Position(testRect.Width, testRect.Height, w.cfg.VerticalCompression)
	pointer.press(deviceOf(target.X, target.Y))
	system.Update(1.0 / 60)

	s := w.state()
	require.Len(t, s.Selection, 1)
	assert.InDelta(t, target.X, s.Selection[0].X, 1e-9)
	assert.InDelta(t, target.Y, s.Selection[0].Y, 1e-9)
	assert.False(t, s.Complete)
}

// 吸附：点击位置偏离星星，追加的是星星位置而不是点击位置
func TestInputSystem_SnapsToStar(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	pointer.press(deviceOf(80+12, 160-9))
	system.Update(1.0 / 60)

	s := w.state()
	require.Len(t, s.Selection, 1)
	assert.InDelta(t, 80, s.Selection[0].X, 1e-9)
	assert.InDelta(t, 160, s.Selection[0].Y, 1e-9)
}

// 连续六次点击不同星星后完成
func TestInputSystem_SixClicksComplete(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)
	overlay := NewOverlaySystem(w.em, w.constellation, w.overlay)

	for i := 0; i < 6; i++ {
		pointer.press(deviceOf(float64(80*(i+1))+10, 160+10))
		system.Update(1.0 / 60)
		overlay.Update(1.0 / 60)
		if i < 5 && w.state().Complete {
			t.Fatalf("completed early after %d clicks", i+1)
		}
	}

	s := w.state()
	assert.Len(t, s.Selection, 6)
	assert.True(t, s.Complete)
	assert.Equal(t, constellation.StageCompleted, s.Stage())
	assert.True(t, w.overlayComponent().Visible)
}

// 远离所有星星的点击不改变状态
func TestInputSystem_MissLeavesStateUnchanged(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	pointer.press(deviceOf(400, 300))
	system.Update(1.0 / 60)

	s := w.state()
	assert.Empty(t, s.Selection)
	assert.False(t, s.Complete)
}

// 距离恰好等于吸附半径时不选中
func TestInputSystem_RadiusIsExclusive(t *testing.T) {
	w := newTestWorld(rowOfStars(1))
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	pointer.press(deviceOf(80, 160+40))
	system.Update(1.0 / 60)
	assert.Empty(t, w.state().Selection)

	pointer.press(deviceOf(80, 160+39))
	system.Update(1.0 / 60)
	assert.Len(t, w.state().Selection, 1)
}

func TestInputSystem_NoStars(t *testing.T) {
	w := newTestWorld(nil)
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	pointer.press(deviceOf(100, 100))
	system.Update(1.0 / 60)
	assert.Empty(t, w.state().Selection)
}

// 画布尚未测量时点击无效
func TestInputSystem_UnmeasuredSurface(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	sc, _ := ecs.GetComponent[*components.SurfaceComponent](w.em, w.constellation)
	sc.Surface = utils.Surface{}

	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	pointer.press(0, 0)
	system.Update(1.0 / 60)
	assert.Empty(t, w.state().Selection)
	assert.False(t, system.HandleClick(0, 0))
}

// 画布外（标题区域）的点击不参与命中检测
func TestInputSystem_ClickOutsideCanvas(t *testing.T) {
	// 星星紧贴画布顶部（局部 y = 3.2）
	w := newTestWorld([]constellation.Star{{X: 0.1, Y: 0.01, Radius: 1}})
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	// 距星星不到 5 像素，但已在画布之外
	pointer.press(int((testRect.X+80)*testScale), int((testRect.Y-1)*testScale))
	system.Update(1.0 / 60)
	assert.Empty(t, w.state().Selection)
}

// 只有按下瞬间才算一次点击
func TestInputSystem_IgnoresHeldPointer(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	x, y := deviceOf(80, 160)
	pointer.state = utils.InputState{Pressed: true, X: x, Y: y}
	system.Update(1.0 / 60)
	assert.Empty(t, w.state().Selection)
}

// 同一颗星星可以重复选中
func TestInputSystem_DuplicateSelection(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	for i := 0; i < 2; i++ {
		pointer.press(deviceOf(80, 160))
		system.Update(1.0 / 60)
	}
	s := w.state()
	require.Len(t, s.Selection, 2)
	assert.Equal(t, s.Selection[0], s.Selection[1])
}

// 完成后面板覆盖画布，指针点击不再追加；HandleClick 仍按原规则追加
func TestInputSystem_CompletedIgnoresPointer(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	pointer := &fakePointer{}
	system := NewConstellationInputSystem(w.em, pointer, w.constellation, w.cfg)

	for i := 0; i < 6; i++ {
		require.True(t, system.HandleClick(testRect.X+float64(80*(i+1)), testRect.Y+160))
	}
	require.True(t, w.state().Complete)

	pointer.press(deviceOf(80, 160))
	system.Update(1.0 / 60)
	assert.Len(t, w.state().Selection, 6)

	require.True(t, system.HandleClick(testRect.X+80, testRect.Y+160))
	assert.Len(t, w.state().Selection, 7)
	assert.True(t, w.state().Complete)
}

// 完成后重置：清空并回到 Drawing，面板隐藏
func TestInputSystem_ResetAfterComplete(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	system := NewConstellationInputSystem(w.em, &fakePointer{}, w.constellation, w.cfg)
	overlay := NewOverlaySystem(w.em, w.constellation, w.overlay)

	for i := 0; i < 6; i++ {
		system.HandleClick(testRect.X+float64(80*(i+1)), testRect.Y+160)
	}
	overlay.Update(1.0 / 60)
	require.True(t, w.overlayComponent().Visible)

	system.Reset()
	overlay.Update(1.0 / 60)

	s := w.state()
	assert.Empty(t, s.Selection)
	assert.NotNil(t, s.Selection)
	assert.False(t, s.Complete)
	assert.Equal(t, constellation.StageDrawing, s.Stage())
	assert.False(t, w.overlayComponent().Visible)
}

// 重置是幂等的
func TestInputSystem_ResetIdempotent(t *testing.T) {
	w := newTestWorld(rowOfStars(8))
	system := NewConstellationInputSystem(w.em, &fakePointer{}, w.constellation, w.cfg)

	system.HandleClick(testRect.X+80, testRect.Y+160)
	system.Reset()
	system.Reset()

	cc, _ := ecs.GetComponent[*components.ConstellationComponent](w.em, w.constellation)
	assert.Empty(t, cc.State.Selection)
	assert.False(t, cc.State.Complete)
	assert.Equal(t, 1, cc.Resets)
}

// 星星列表按生成顺序返回
func TestCollectStars(t *testing.T) {
	w := newTestWorld(rowOfStars(5))
	assert.Equal(t, w.stars, CollectStars(w.em))
}
