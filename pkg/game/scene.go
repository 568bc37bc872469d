package game

// Scene represents a screen of the application (currently only the constellation canvas).
// Scenes update their logic every tick; drawing is driven by the FrameScheduler,
// so a scene registers its own render loop when mounted.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)
}

// Mountable 是一个可选接口，用于场景的挂载/卸载生命周期
//
// SceneManager 切换场景时：
//   - 旧场景调用 Unmount()：取消渲染循环、注销窗口缩放监听
//   - 新场景调用 Mount()：启动渲染循环、注册窗口缩放监听
type Mountable interface {
	Mount()
	Unmount()
}
