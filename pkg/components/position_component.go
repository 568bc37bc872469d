package components

// PositionComponent 实体位置（视口逻辑像素）
type PositionComponent struct {
	X float64
	Y float64
}
