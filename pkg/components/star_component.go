package components

import "github.com/decker502/horizon/pkg/constellation"

// StarComponent 星星组件
// 星星生成后不可修改，Index 为生成顺序（命中检测平局时取较小者）
type StarComponent struct {
	Star  constellation.Star
	Index int
}
