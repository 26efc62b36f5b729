package pdf

import "strings"

// WrapText splits text into lines using greedy word wrapping: words
// accumulate onto the current line while the measured width stays
// within maxWidth; on overflow the line is committed and the
// overflowing word starts the next one. A single word wider than
// maxWidth gets its own line rather than being split.
func WrapText(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := ""
	for _, word := range words {
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if measure(candidate) <= maxWidth {
			cur = candidate
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// FitWidth scales (w, h) to the target width preserving aspect ratio.
// It never upscales: when w is already within maxWidth the original
// dimensions are returned unchanged.
func FitWidth(w, h, maxWidth float64) (float64, float64) {
	if w <= 0 || h <= 0 || w <= maxWidth {
		return w, h
	}
	return maxWidth, maxWidth * h / w
}
