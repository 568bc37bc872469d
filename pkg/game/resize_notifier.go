package game

// ResizeFunc 窗口缩放回调
// width, height 为窗口逻辑尺寸，scale 为设备像素比
type ResizeFunc func(width, height, scale float64)

// ResizeNotifier 窗口缩放通知
//
// App.Layout 检测到尺寸或设备像素比变化时调用 Notify，
// 场景在挂载时订阅、卸载时退订。
type ResizeNotifier struct {
	nextID      uint64
	subscribers map[uint64]ResizeFunc
	order       []uint64

	width, height, scale float64
}

// NewResizeNotifier 创建窗口缩放通知器
func NewResizeNotifier() *ResizeNotifier {
	return &ResizeNotifier{
		subscribers: make(map[uint64]ResizeFunc),
	}
}

// Subscribe 注册回调，返回退订函数
// 退订函数可以重复调用
func (rn *ResizeNotifier) Subscribe(fn ResizeFunc) (unsubscribe func()) {
	id := rn.nextID
	rn.nextID++
	rn.subscribers[id] = fn
	rn.order = append(rn.order, id)

	return func() {
		if _, ok := rn.subscribers[id]; !ok {
			return
		}
		delete(rn.subscribers, id)
		for i, v := range rn.order {
			if v == id {
				rn.order = append(rn.order[:i], rn.order[i+1:]...)
				break
			}
		}
	}
}

// Notify 记录最新尺寸并按订阅顺序通知所有订阅者
func (rn *ResizeNotifier) Notify(width, height, scale float64) {
	rn.width, rn.height, rn.scale = width, height, scale

	// 回调中可能退订，先复制一份
	ids := append([]uint64(nil), rn.order...)
	for _, id := range ids {
		if fn, ok := rn.subscribers[id]; ok {
			fn(width, height, scale)
		}
	}
}

// Changed 判断给定尺寸是否与上次通知的不同
func (rn *ResizeNotifier) Changed(width, height, scale float64) bool {
	return width != rn.width || height != rn.height || scale != rn.scale
}

// Current 返回上次通知的尺寸
func (rn *ResizeNotifier) Current() (width, height, scale float64) {
	return rn.width, rn.height, rn.scale
}

// Subscribers 返回当前订阅者数量
func (rn *ResizeNotifier) Subscribers() int {
	return len(rn.subscribers)
}
