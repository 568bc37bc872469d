package utils

import (
	"strings"
	"unicode/utf8"
)

// MeasureFunc 返回单行文字的宽度（像素）
type MeasureFunc func(s string) float64

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - maxWidth: 最大宽度（像素）
//   - measure: 宽度测量函数
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 如果单词太长超过最大宽度，按字符强制断行
func WrapText(textStr string, maxWidth float64, measure MeasureFunc) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measure(testLine) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽，按字符断开
		if measure(word) > maxWidth {
			parts := breakWord(word, maxWidth, measure)
			lines = append(lines, parts[:len(parts)-1]...)
			currentLine = parts[len(parts)-1]
			continue
		}
		currentLine = word
	}

	// 添加最后一行
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	// 如果没有换行，至少返回原文本
	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// breakWord 按字符断开超宽单词，至少返回一段
func breakWord(word string, maxWidth float64, measure MeasureFunc) []string {
	var parts []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]

		test := current + string(r)
		if current != "" && measure(test) > maxWidth {
			parts = append(parts, current)
			current = string(r)
			continue
		}
		current = test
	}
	return append(parts, current)
}
