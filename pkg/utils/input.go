package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针输入状态
// 统一处理鼠标和触摸输入，坐标为后备缓冲区的设备像素
type InputState struct {
	// JustPressed 本帧刚刚发生点击/触摸
	JustPressed bool
	// JustReleased 本帧刚刚松开
	JustReleased bool
	// Pressed 当前处于按下状态
	Pressed bool
	// X, Y 指针位置
	X, Y int
	// IsTouching 是否为触摸输入
	IsTouching bool
}

// PointerSource 指针输入来源
// 系统通过该接口读取输入，测试中可替换为固定输入
type PointerSource interface {
	Pointer() InputState
}

// EbitenPointer 基于 ebiten 的指针输入
type EbitenPointer struct {
	lastTouchX, lastTouchY int
}

// Pointer 获取当前帧的输入状态，优先检测触摸
func (p *EbitenPointer) Pointer() InputState {
	state := InputState{}

	// 触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.Pressed = true
		state.IsTouching = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		p.lastTouchX, p.lastTouchY = state.X, state.Y
		return state
	}

	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.Pressed = true
		state.IsTouching = true
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		p.lastTouchX, p.lastTouchY = state.X, state.Y
		return state
	}

	// 触摸松开后 TouchPosition 已不可用，使用最后记录的位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		state.JustReleased = true
		state.IsTouching = true
		state.X, state.Y = p.lastTouchX, p.lastTouchY
		return state
	}

	// 鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return state
}

// KeySource 键盘输入来源
type KeySource interface {
	KeyJustPressed(key ebiten.Key) bool
}

// EbitenKeys 基于 ebiten 的键盘输入
type EbitenKeys struct{}

// KeyJustPressed 按键是否在本帧刚刚按下
func (EbitenKeys) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
