package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// String 返回状态名称（用于日志）
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "Normal"
	case UIHovered:
		return "Hovered"
	case UIClicked:
		return "Clicked"
	case UIDisabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}
