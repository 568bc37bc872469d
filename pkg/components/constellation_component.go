package components

import (
	"github.com/decker502/horizon/pkg/constellation"
	"github.com/decker502/horizon/pkg/utils"
)

// ConstellationComponent 星图连线状态
//
// State 只由 ConstellationInputSystem（追加）和重置操作写入，
// 渲染系统和完成面板只读。
type ConstellationComponent struct {
	State constellation.State
	// Resets 重置次数，用于日志区分每一轮连线
	Resets int
}

// SurfaceComponent 画布几何信息
// 挂载时以及每次窗口缩放时更新
type SurfaceComponent struct {
	Surface utils.Surface
}
