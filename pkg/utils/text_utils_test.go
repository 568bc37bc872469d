package utils

import (
	"testing"
	"unicode/utf8"
)

// fixedWidth 每个字符 10 像素
func fixedWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 10
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{
			name:     "短文本不换行",
			input:    "short text",
			maxWidth: 1000,
			want:     []string{"short text"},
		},
		{
			name:     "在空格处换行",
			input:    "draw your own path",
			maxWidth: 100,
			want:     []string{"draw your", "own path"},
		},
		{
			name:     "超长单词强制断行",
			input:    "constellations",
			maxWidth: 50,
			want:     []string{"const", "ellat", "ions"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 100,
			want:     []string{""},
		},
		{
			name:     "宽度无效时不换行",
			input:    "draw your own path",
			maxWidth: 0,
			want:     []string{"draw your own path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, tt.maxWidth, fixedWidth)
			if len(lines) != len(tt.want) {
				t.Fatalf("WrapText() = %q, want %q", lines, tt.want)
			}
			for i := range lines {
				if lines[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, lines[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapTextNilMeasure(t *testing.T) {
	lines := WrapText("a b c", 10, nil)
	if len(lines) != 1 || lines[0] != "a b c" {
		t.Errorf("Expected text unchanged, got %q", lines)
	}
}
