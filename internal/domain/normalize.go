package domain

import (
	"strings"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeTagName is the identity key of a tag: "React", "react" and " REACT "
// all name the same tag.
func NormalizeTagName(name string) string {
	return NormalizeText(name)
}

// DedupeTagNames trims names and drops empty and case-insensitive duplicates,
// keeping the first spelling and the original order.
func DedupeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := NormalizeTagName(n)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}
