// Package constellation 实现星图连线的核心逻辑
//
// 本包只包含纯数据和纯函数，不依赖 ebiten，也不持有任何可变的全局状态：
//   - Generate：生成一组归一化坐标的星星（每个场景实例只调用一次）
//   - Nearest / Snap：把点击位置吸附到最近的星星
//   - Append / Reset：连线状态的纯更新函数
//
// 坐标约定：
//   - Star.X / Star.Y 是 [0, 1) 的归一化坐标
//   - Point 是画布局部的逻辑像素坐标（点击当时的画布尺寸换算得到）
package constellation

// RadiusRange 星星半径的取值范围（逻辑像素）
type RadiusRange struct {
	Min float64
	Max float64
}

// DefaultRadiusRange 默认星星半径范围
var DefaultRadiusRange = RadiusRange{Min: 0.3, Max: 1.6}

// Contains 判断半径是否落在 [Min, Max] 内
func (r RadiusRange) Contains(radius float64) bool {
	return radius >= r.Min && radius <= r.Max
}

// Star 一颗星星
// 创建后不可修改；只在场景重新挂载时重新生成，窗口缩放不会重新生成
type Star struct {
	X      float64 // 归一化 X 坐标 [0, 1)
	Y      float64 // 归一化 Y 坐标 [0, 1)
	Radius float64 // 绘制半径（逻辑像素）
}

// Source 随机数来源
// *rand.Rand (math/rand/v2) 满足该接口，测试中可替换为固定序列
type Source interface {
	Float64() float64
}

// Generate 生成 count 颗星星
//
// X、Y 独立均匀分布于 [0, 1)，半径均匀分布于 radius 范围内。
// count <= 0 返回空切片。
func Generate(rng Source, count int, radius RadiusRange) []Star {
	if count <= 0 {
		return []Star{}
	}

	stars := make([]Star, count)
	span := radius.Max - radius.Min
	for i := range stars {
		stars[i] = Star{
			X:      rng.Float64(),
			Y:      rng.Float64(),
			Radius: radius.Min + rng.Float64()*span,
		}
	}
	return stars
}

// Position 返回星星在给定画布尺寸下的渲染位置（逻辑像素）
// compression 为纵向压缩系数，为底部地平线留出空间
func (s Star) Position(width, height, compression float64) Point {
	return Point{
		X: s.X * width,
		Y: s.Y * height * compression,
	}
}
