package game

import (
	"log"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update is called at any given time and
// drives the mount/unmount lifecycle of scenes that implement Mountable.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is unmounted before the new one is mounted.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}

	if m, ok := sm.currentScene.(Mountable); ok {
		m.Unmount()
	}

	sm.currentScene = scene

	if m, ok := scene.(Mountable); ok {
		m.Mount()
	}
	log.Printf("[SceneManager] 切换场景: %T", scene)
}

// GetCurrentScene 返回当前活动的场景
// 没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Shutdown 卸载当前场景
// 在程序退出前调用，保证渲染循环和监听器被释放
func (sm *SceneManager) Shutdown() {
	if m, ok := sm.currentScene.(Mountable); ok {
		m.Unmount()
	}
	sm.currentScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}
