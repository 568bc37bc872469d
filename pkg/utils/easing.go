package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（完成面板淡入使用）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
