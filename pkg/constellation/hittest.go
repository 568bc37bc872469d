package constellation

import "math"

// Nearest 查找距离点击位置最近的星星
//
// 参数：
//   - stars: 星星列表（按生成顺序）
//   - click: 点击位置（画布局部逻辑像素）
//   - width, height: 画布逻辑尺寸
//   - compression: 纵向压缩系数
//
// 返回：
//   - 最近星星的渲染位置
//   - 距离
//   - 是否找到（星星为空或画布尚未测量时为 false）
//
// 距离相同时取生成顺序靠前的星星。
func Nearest(stars []Star, click Point, width, height, compression float64) (Point, float64, bool) {
	if width <= 0 || height <= 0 || len(stars) == 0 {
		return Point{}, 0, false
	}

	var nearest Point
	minDist := math.Inf(1)
	for _, s := range stars {
		pos := s.Position(width, height, compression)
		d := math.Hypot(pos.X-click.X, pos.Y-click.Y)
		if d < minDist {
			minDist = d
			nearest = pos
		}
	}
	return nearest, minDist, true
}

// Snap 把点击吸附到最近的星星
// 只有最近距离严格小于 radius 时才返回 true
func Snap(stars []Star, click Point, width, height, compression, radius float64) (Point, bool) {
	p, d, ok := Nearest(stars, click, width, height, compression)
	if !ok || d >= radius {
		return Point{}, false
	}
	return p, true
}
