package ui

import (
	"fmt"
	"strings"
	"time"

	"genie/internal/chat"
	"genie/internal/models"
	"genie/internal/sidebar"
	"genie/internal/styles"

	"github.com/charmbracelet/glamour"
)

// swipeTracker follows a mouse drag so a release can be classified as a
// swipe. Only one button drag is tracked at a time.
type swipeTracker struct {
	active bool
	startX int
	startY int
}

func (s *swipeTracker) begin(x, y int) {
	s.active = true
	s.startX = x
	s.startY = y
}

func (s *swipeTracker) move(x, y int) {
	// Motion alone never completes a gesture; the start point is all
	// that matters.
}

// end finishes the drag and reports its total displacement. ok is false
// when no press was seen.
func (s *swipeTracker) end(x, y int) (dx, dy int, ok bool) {
	if !s.active {
		return 0, 0, false
	}
	s.active = false
	return x - s.startX, y - s.startY, true
}

// flattenGroups lays the recency buckets out in the order the sidebar
// displays them, so cursor index N always addresses the Nth visible row.
func flattenGroups(g sidebar.Groups) []models.Chat {
	out := make([]models.Chat, 0,
		len(g.Today)+len(g.Yesterday)+len(g.Previous7Days)+len(g.Older))
	out = append(out, g.Today...)
	out = append(out, g.Yesterday...)
	out = append(out, g.Previous7Days...)
	out = append(out, g.Older...)
	return out
}

func FormatUserMessage(content string, width int) string {
	label := styles.UserLabelStyle.Render("YOU")
	msg := styles.UserMsgStyle.Width(width - 4).Render(content)
	return fmt.Sprintf("%s\n%s", label, msg)
}

// FormatAssistantMessage renders a reply for the transcript. Structured
// recipe replies (emoji section markers, numbered steps) get the
// line-by-line styling; anything else goes through glamour as markdown.
func FormatAssistantMessage(content string, width int, renderer *glamour.TermRenderer) string {
	label := styles.AiLabelStyle.Render("GENIE")

	lines := chat.Segment(content)
	var body string
	if looksStructured(lines) || renderer == nil {
		body = renderSegments(lines)
	} else {
		rendered, err := renderer.Render(content)
		if err != nil {
			body = renderSegments(lines)
		} else {
			body = strings.TrimSpace(rendered)
		}
	}

	return fmt.Sprintf("%s\n%s", label, styles.AiMsgStyle.Render(body))
}

func looksStructured(lines []chat.Line) bool {
	for _, l := range lines {
		switch l.Kind {
		case chat.LineHeading, chat.LineNumbered, chat.LineSubHeading:
			return true
		}
	}
	return false
}

func renderSegments(lines []chat.Line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		switch l.Kind {
		case chat.LineBlank:
			// Blank lines carry the section spacing.
		case chat.LineHeading:
			b.WriteString(styles.HeadingStyle.Render(l.Text))
		case chat.LineSubHeading:
			b.WriteString(styles.SubHeadingStyle.Render(l.Text))
		case chat.LineNumbered:
			b.WriteString(styles.NumberStyle.Render(l.Number+".") + " " + l.Text)
		case chat.LineBullet:
			b.WriteString(styles.BulletStyle.Render("•") + " " + l.Text)
		default:
			b.WriteString(l.Text)
		}
	}
	return b.String()
}

func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

func RelativeTime(t time.Time) string {
	d := time.Since(t)
	if d < 0 {
		d = -d
	}
	if d < time.Minute {
		return "just now"
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 min ago"
		}
		return fmt.Sprintf("%d mins ago", mins)
	}
	if d < 24*time.Hour {
		hrs := int(d.Hours())
		if hrs == 1 {
			return "1 hr ago"
		}
		return fmt.Sprintf("%d hrs ago", hrs)
	}
	days := int(d.Hours() / 24)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
