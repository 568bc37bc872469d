package components

// OverlayComponent 完成面板
//
// Visible 与连线状态的 Complete 保持一致；
// 显示后在 Duration 秒内淡入，Opacity 从 0 到 1，OffsetY 从 RiseDistance 到 0。
type OverlayComponent struct {
	Title string

	Width, Height float64

	Visible bool
	Elapsed float64

	Duration     float64
	RiseDistance float64

	Opacity float64
	OffsetY float64
}
