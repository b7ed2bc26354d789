package chat

import (
	"regexp"
	"strings"
)

// The backend's replies arrive as plain text sprinkled with markdown
// remnants and emoji section markers. Display formatting strips the
// remnants and classifies lines for rendering; the stored message
// content is never touched.

var (
	boldRE     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRE   = regexp.MustCompile(`\*(.*?)\*`)
	emphRE     = regexp.MustCompile(`_(.*?)_`)
	codeRE     = regexp.MustCompile("`(.*?)`")
	headingRE  = regexp.MustCompile(`(?m)^#+\s*(.*?)$`)
	ruleRE     = regexp.MustCompile(`(?m)^---+\s*$`)
	linkRE     = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	blanksRE   = regexp.MustCompile(`\n\s*\n\s*\n`)
	numberedRE = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
	bulletRE   = regexp.MustCompile(`^[•\-]\s+(.*)`)
)

var sectionMarkers = []string{"📝", "👨‍🍳", "💡"}

var subHeadingMarkers = []string{"For the", "For filling", "For assembly"}

// CleanMarkdown removes markdown syntax while keeping the text.
func CleanMarkdown(text string) string {
	if text == "" {
		return text
	}
	out := boldRE.ReplaceAllString(text, "$1")
	out = italicRE.ReplaceAllString(out, "$1")
	out = emphRE.ReplaceAllString(out, "$1")
	out = codeRE.ReplaceAllString(out, "$1")
	out = headingRE.ReplaceAllString(out, "$1")
	out = ruleRE.ReplaceAllString(out, "")
	out = linkRE.ReplaceAllString(out, "$1")
	out = blanksRE.ReplaceAllString(out, "\n\n")
	return out
}

type LineKind int

const (
	LineBlank LineKind = iota
	LineHeading
	LineNumbered
	LineBullet
	LineSubHeading
	LineText
)

type Line struct {
	Kind   LineKind
	Number string // set for LineNumbered
	Text   string
}

// Segment classifies a reply's lines for display: emoji-marked section
// headings, numbered steps, bullet items, "For the …" sub-headings,
// blanks, and plain text.
func Segment(content string) []Line {
	cleaned := CleanMarkdown(content)
	rawLines := strings.Split(cleaned, "\n")
	lines := make([]Line, 0, len(rawLines))

	for _, raw := range rawLines {
		line := strings.TrimSpace(raw)
		if line == "" {
			lines = append(lines, Line{Kind: LineBlank})
			continue
		}

		if containsAny(line, sectionMarkers) {
			lines = append(lines, Line{Kind: LineHeading, Text: line})
			continue
		}

		if m := numberedRE.FindStringSubmatch(line); m != nil {
			lines = append(lines, Line{Kind: LineNumbered, Number: m[1], Text: m[2]})
			continue
		}

		if m := bulletRE.FindStringSubmatch(line); m != nil {
			lines = append(lines, Line{Kind: LineBullet, Text: m[1]})
			continue
		}

		if containsAny(line, subHeadingMarkers) {
			lines = append(lines, Line{Kind: LineSubHeading, Text: line})
			continue
		}

		lines = append(lines, Line{Kind: LineText, Text: line})
	}

	return lines
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
