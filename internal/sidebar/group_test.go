package sidebar

import (
	"testing"
	"time"

	"genie/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByRecency(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	chats := []models.Chat{
		{ID: "today", UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "yesterday", UpdatedAt: now.AddDate(0, 0, -1)},
		{ID: "threedays", UpdatedAt: now.AddDate(0, 0, -3)},
		{ID: "tendays", UpdatedAt: now.AddDate(0, 0, -10)},
	}

	g := GroupByRecency(chats, now)

	require.Len(t, g.Today, 1)
	assert.Equal(t, "today", g.Today[0].ID)
	require.Len(t, g.Yesterday, 1)
	assert.Equal(t, "yesterday", g.Yesterday[0].ID)
	require.Len(t, g.Previous7Days, 1)
	assert.Equal(t, "threedays", g.Previous7Days[0].ID)
	require.Len(t, g.Older, 1)
	assert.Equal(t, "tendays", g.Older[0].ID)
}

func TestGroupFallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	chats := []models.Chat{
		{ID: "a", CreatedAt: now.Add(-time.Hour)}, // no updated_at
	}

	g := GroupByRecency(chats, now)
	require.Len(t, g.Today, 1)
	assert.Equal(t, "a", g.Today[0].ID)
}

func TestGroupBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	chats := []models.Chat{
		{ID: "midnight-today", UpdatedAt: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
		{ID: "just-before-midnight", UpdatedAt: time.Date(2026, 8, 27, 23, 59, 59, 0, time.UTC)},
		{ID: "seven-days", UpdatedAt: time.Date(2026, 8, 21, 18, 0, 0, 0, time.UTC)},
		{ID: "eight-days", UpdatedAt: time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)},
	}

	g := GroupByRecency(chats, now)

	require.Len(t, g.Today, 1)
	assert.Equal(t, "midnight-today", g.Today[0].ID)
	require.Len(t, g.Yesterday, 1)
	assert.Equal(t, "just-before-midnight", g.Yesterday[0].ID)

	// Exactly seven days back lands on the weekAgo midnight, which is
	// not "after" it, so it falls to Older along with anything earlier.
	require.Len(t, g.Older, 2)
}

func TestGroupKeepsBackendOrderWithinBucket(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	chats := []models.Chat{
		{ID: "first", UpdatedAt: now.Add(-1 * time.Hour)},
		{ID: "second", UpdatedAt: now.Add(-5 * time.Hour)},
		{ID: "third", UpdatedAt: now.Add(-2 * time.Hour)},
	}

	g := GroupByRecency(chats, now)
	require.Len(t, g.Today, 3)
	assert.Equal(t, "first", g.Today[0].ID)
	assert.Equal(t, "second", g.Today[1].ID)
	assert.Equal(t, "third", g.Today[2].ID)
}
