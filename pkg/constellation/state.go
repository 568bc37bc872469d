package constellation

// Point 已选中的连线点（画布局部逻辑像素）
// 记录的是点击当时星星的渲染位置，窗口缩放后不会重新计算
type Point struct {
	X float64
	Y float64
}

// Stage 连线状态机阶段
type Stage int

const (
	// StageDrawing 连线中（初始状态）
	StageDrawing Stage = iota
	// StageCompleted 已完成
	StageCompleted
)

// String 返回阶段名称（用于日志）
func (s Stage) String() string {
	switch s {
	case StageDrawing:
		return "Drawing"
	case StageCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// State 连线交互状态
//
// Selection 按点击顺序记录连线点，允许重复（同一颗星可以被多次选中）。
// Complete 一旦为 true，只有 Reset 才能恢复为 false。
type State struct {
	Selection []Point
	Complete  bool
}

// Stage 返回当前所处阶段
func (s State) Stage() Stage {
	if s.Complete {
		return StageCompleted
	}
	return StageDrawing
}

// Len 返回已选中的点数
func (s State) Len() int {
	return len(s.Selection)
}

// Append 追加一个连线点，返回新状态
//
// 不修改传入状态的底层数组，旧状态在追加后仍然保持原值。
// 追加后长度 >= threshold 时 Complete 置为 true。
func Append(s State, p Point, threshold int) State {
	next := make([]Point, len(s.Selection), len(s.Selection)+1)
	copy(next, s.Selection)
	next = append(next, p)

	return State{
		Selection: next,
		Complete:  s.Complete || len(next) >= threshold,
	}
}

// Reset 返回初始状态：空选择、未完成
func Reset() State {
	return State{Selection: []Point{}}
}
