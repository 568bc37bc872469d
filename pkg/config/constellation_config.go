package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/horizon/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ConstellationConfigPath 内嵌默认配置的路径
const ConstellationConfigPath = "data/constellation.yaml"

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid constellation config")

// ConstellationConfig 星图连线配置
//
// 配置文件位置: data/constellation.yaml
// 文件中缺省的字段保留 DefaultConstellationConfig 中的默认值。
type ConstellationConfig struct {
	// StarCount 星星数量
	StarCount int `yaml:"starCount"`

	// SnapRadius 点击吸附半径（逻辑像素），距离严格小于该值才会选中
	SnapRadius float64 `yaml:"snapRadius"`

	// CompletionThreshold 完成所需的连线点数
	CompletionThreshold int `yaml:"completionThreshold"`

	// VerticalCompression 星星纵向压缩系数，为地平线留出底部区域
	VerticalCompression float64 `yaml:"verticalCompression"`

	// HorizonFraction 地平线色带占画布高度的比例
	HorizonFraction float64 `yaml:"horizonFraction"`

	// StarRadius 星星半径范围
	StarRadius RadiusConfig `yaml:"starRadius"`

	// Seed 随机种子，0 表示使用当前时间
	Seed uint64 `yaml:"seed"`

	// StrokeWidth 连线宽度（逻辑像素）
	StrokeWidth float64 `yaml:"strokeWidth"`

	// Colors 画布配色
	Colors ColorConfig `yaml:"colors"`

	// OverlayTitle 完成面板上显示的标题
	OverlayTitle string `yaml:"overlayTitle"`
}

// RadiusConfig 星星半径范围
type RadiusConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ColorConfig 画布配色
type ColorConfig struct {
	BackgroundTop    HexColor `yaml:"backgroundTop"`
	BackgroundBottom HexColor `yaml:"backgroundBottom"`
	Star             HexColor `yaml:"star"`
	Path             HexColor `yaml:"path"`
	Horizon          HexColor `yaml:"horizon"`
}

// HexColor 以 "#rrggbb" 或 "#rrggbbaa" 书写的颜色
type HexColor struct {
	color.NRGBA
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.NRGBA = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c HexColor) MarshalYAML() (any, error) {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

// ParseHexColor 解析 "#rrggbb" / "#rrggbbaa"
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// DefaultConstellationConfig 返回默认配置
func DefaultConstellationConfig() *ConstellationConfig {
	return &ConstellationConfig{
		StarCount:           70,
		SnapRadius:          40,
		CompletionThreshold: 6,
		VerticalCompression: 0.8,
		HorizonFraction:     0.18,
		StarRadius:          RadiusConfig{Min: 0.3, Max: 1.6},
		StrokeWidth:         1.2,
		Colors: ColorConfig{
			BackgroundTop:    HexColor{color.NRGBA{R: 0x0b, G: 0x0e, B: 0x16, A: 0xff}},
			BackgroundBottom: HexColor{color.NRGBA{R: 0x09, G: 0x0b, B: 0x12, A: 0xff}},
			Star:             HexColor{color.NRGBA{R: 180, G: 160, B: 255, A: 204}},
			Path:             HexColor{color.NRGBA{R: 167, G: 139, B: 250, A: 204}},
			Horizon:          HexColor{color.NRGBA{R: 120, G: 120, B: 200, A: 15}},
		},
		OverlayTitle: "Your Journey",
	}
}

// ParseConstellationConfig 解析 YAML 配置
// 未出现的字段保留默认值
func ParseConstellationConfig(data []byte) (*ConstellationConfig, error) {
	cfg := DefaultConstellationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse constellation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConstellationConfig 从磁盘加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/constellation.yaml"）
//
// 返回:
//   - *ConstellationConfig: 加载成功后的配置结构
//   - error: 读取、解析或校验失败时返回错误
func LoadConstellationConfig(path string) (*ConstellationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read constellation config: %w", err)
	}
	return ParseConstellationConfig(data)
}

// LoadEmbeddedConstellationConfig 从内嵌资源加载默认配置
func LoadEmbeddedConstellationConfig() (*ConstellationConfig, error) {
	data, err := embedded.ReadFile(ConstellationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded constellation config: %w", err)
	}
	return ParseConstellationConfig(data)
}

// Validate 验证配置有效性
//
// 检查项：
//   - 星星数量不能为负
//   - 吸附半径、完成阈值、连线宽度必须为正
//   - 压缩系数和地平线比例必须在 (0, 1] 内
//   - 半径范围 Min <= Max 且 Min >= 0
func (c *ConstellationConfig) Validate() error {
	if c.StarCount < 0 {
		return fmt.Errorf("%w: starCount(%d) < 0", ErrInvalidConfig, c.StarCount)
	}
	if c.SnapRadius <= 0 {
		return fmt.Errorf("%w: snapRadius(%.1f) must be positive", ErrInvalidConfig, c.SnapRadius)
	}
	if c.CompletionThreshold <= 0 {
		return fmt.Errorf("%w: completionThreshold(%d) must be positive", ErrInvalidConfig, c.CompletionThreshold)
	}
	if c.VerticalCompression <= 0 || c.VerticalCompression > 1 {
		return fmt.Errorf("%w: verticalCompression(%.2f) not in (0, 1]", ErrInvalidConfig, c.VerticalCompression)
	}
	if c.HorizonFraction <= 0 || c.HorizonFraction > 1 {
		return fmt.Errorf("%w: horizonFraction(%.2f) not in (0, 1]", ErrInvalidConfig, c.HorizonFraction)
	}
	if c.StarRadius.Min < 0 || c.StarRadius.Min > c.StarRadius.Max {
		return fmt.Errorf("%w: starRadius range invalid: min(%.2f) max(%.2f)",
			ErrInvalidConfig, c.StarRadius.Min, c.StarRadius.Max)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("%w: strokeWidth(%.2f) must be positive", ErrInvalidConfig, c.StrokeWidth)
	}
	return nil
}
