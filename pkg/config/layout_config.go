package config

// 布局配置常量
// 本文件定义窗口中各区域的尺寸，所有数值为逻辑像素

const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 960

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 640

	// HeaderHeight 画布上方标题区高度
	HeaderHeight = 150.0

	// FooterHeight 画布下方按钮区高度
	FooterHeight = 84.0

	// ContentPaddingX 标题和按钮的水平内边距
	ContentPaddingX = 40.0

	// ResetButtonWidth 重置按钮宽度
	ResetButtonWidth = 96.0

	// ResetButtonHeight 重置按钮高度
	ResetButtonHeight = 36.0

	// OverlayWidth 完成面板宽度
	OverlayWidth = 320.0

	// OverlayHeight 完成面板高度
	OverlayHeight = 72.0

	// OverlayFadeDuration 完成面板淡入时长（秒）
	OverlayFadeDuration = 0.4

	// OverlayRiseDistance 完成面板淡入时的初始下移距离
	OverlayRiseDistance = 10.0
)

// CanvasRect 根据窗口逻辑尺寸计算画布区域
// 返回值：x, y, width, height；窗口过小时宽高为 0
func CanvasRect(windowWidth, windowHeight float64) (float64, float64, float64, float64) {
	height := windowHeight - HeaderHeight - FooterHeight
	if windowWidth <= 0 || height <= 0 {
		return 0, HeaderHeight, 0, 0
	}
	return 0, HeaderHeight, windowWidth, height
}

// ResetButtonPosition 重置按钮左上角位置
func ResetButtonPosition(windowWidth, windowHeight float64) (float64, float64) {
	return ContentPaddingX, windowHeight - FooterHeight + (FooterHeight-ResetButtonHeight)/2
}
