package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameFunc 帧回调
// screen 为本帧的后备缓冲区（设备像素）
type FrameFunc func(screen *ebiten.Image)

// FrameHandle 帧请求句柄，用于取消尚未执行的请求
// 0 为无效句柄
type FrameHandle uint64

// FrameScheduler 帧调度器
//
// 与浏览器的 requestAnimationFrame 语义一致：
//   - RequestFrame 注册的回调只在下一次 RunFrame 中执行一次
//   - 回调若要持续绘制，需要在执行时再次 RequestFrame（自我续约）
//   - Cancel 之后回调不会再执行，包括同一帧中尚未轮到的回调
//
// 所有方法都在 ebiten 的主循环中调用，不需要加锁。
type FrameScheduler struct {
	nextHandle FrameHandle
	pending    map[FrameHandle]FrameFunc
	order      []FrameHandle
	frames     uint64
}

// NewFrameScheduler 创建帧调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		nextHandle: 1,
		pending:    make(map[FrameHandle]FrameFunc),
	}
}

// RequestFrame 请求在下一帧执行 fn
func (fs *FrameScheduler) RequestFrame(fn FrameFunc) FrameHandle {
	if fn == nil {
		return 0
	}
	h := fs.nextHandle
	fs.nextHandle++
	fs.pending[h] = fn
	fs.order = append(fs.order, h)
	return h
}

// Cancel 取消尚未执行的帧请求
// 对已执行或已取消的句柄调用是安全的
func (fs *FrameScheduler) Cancel(h FrameHandle) {
	delete(fs.pending, h)
}

// RunFrame 执行本帧所有待执行的回调
// 回调执行期间新请求的帧会推迟到下一次 RunFrame
func (fs *FrameScheduler) RunFrame(screen *ebiten.Image) {
	fs.frames++

	batch := fs.order
	fs.order = nil

	for _, h := range batch {
		fn, ok := fs.pending[h]
		if !ok {
			continue
		}
		delete(fs.pending, h)
		fn(screen)
	}
}

// Pending 返回待执行的请求数
func (fs *FrameScheduler) Pending() int {
	return len(fs.pending)
}

// Frames 返回已执行的帧数
func (fs *FrameScheduler) Frames() uint64 {
	return fs.frames
}
