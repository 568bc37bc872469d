package render

import (
	"fmt"
	"image/color"
	"unicode/utf8"
)

// Op 一条绘制命令
type Op struct {
	Kind   string // "clear" | "rect" | "gradient" | "circle" | "line" | "strokeRect" | "text"
	Args   []float64
	Colors []color.Color
	Text   string
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s(%q, %v)", o.Kind, o.Text, o.Args)
	}
	return fmt.Sprintf("%s%v", o.Kind, o.Args)
}

// Recorder 记录绘制命令的 Canvas
// 用于在没有 GPU 上下文的环境中检查渲染输出
type Recorder struct {
	Ops []Op
}

// Count 返回指定类型的命令数量
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter 返回指定类型的命令
func (r *Recorder) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Kinds 按顺序返回所有命令类型
func (r *Recorder) Kinds() []string {
	kinds := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) Clear(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Args: []float64{x, y, w, h}})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Args: []float64{x, y, w, h}, Colors: []color.Color{c}})
}

func (r *Recorder) FillVerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "gradient", Args: []float64{x, y, w, h}, Colors: []color.Color{top, bottom}})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", Args: []float64{cx, cy, radius}, Colors: []color.Color{c}})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", Args: []float64{x0, y0, x1, y1, width}, Colors: []color.Color{c}})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "strokeRect", Args: []float64{x, y, w, h, width}, Colors: []color.Color{c}})
}

func (r *Recorder) DrawText(s string, x, y, size float64, c color.Color, align Align) {
	r.Ops = append(r.Ops, Op{Kind: "text", Args: []float64{x, y, size, float64(align)}, Colors: []color.Color{c}, Text: s})
}

// MeasureText 按每个字符 size/2 估算宽度
func (r *Recorder) MeasureText(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
}
