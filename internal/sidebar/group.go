package sidebar

import (
	"time"

	"genie/internal/models"
)

// Groups buckets chats by how recently they were touched. Order inside
// a bucket is whatever order the backend returned.
type Groups struct {
	Today         []models.Chat
	Yesterday     []models.Chat
	Previous7Days []models.Chat
	Older         []models.Chat
}

// GroupByRecency partitions chats by UpdatedAt (CreatedAt when the
// backend never set an update time), comparing dates truncated to
// midnight in now's location.
func GroupByRecency(chats []models.Chat, now time.Time) Groups {
	today := midnight(now, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	weekAgo := today.AddDate(0, 0, -7)

	var g Groups
	for _, c := range chats {
		stamp := c.UpdatedAt
		if stamp.IsZero() {
			stamp = c.CreatedAt
		}
		day := midnight(stamp, now.Location())

		switch {
		case day.Equal(today):
			g.Today = append(g.Today, c)
		case day.Equal(yesterday):
			g.Yesterday = append(g.Yesterday, c)
		case day.After(weekAgo):
			g.Previous7Days = append(g.Previous7Days, c)
		default:
			g.Older = append(g.Older, c)
		}
	}
	return g
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
