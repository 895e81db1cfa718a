package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/clubstats/internal/export"
	"github.com/vytor/clubstats/internal/models"
)

func TestRatingVector_SubstitutesFloorForUnspecified(t *testing.T) {
	rec := &models.MemberRecord{Username: "bob"}

	assert.Equal(t, []int{800, 800, 800, 800, 800, 800}, export.RatingVector(rec))
}

func TestRatingVector_FixedCategoryOrder(t *testing.T) {
	rec := &models.MemberRecord{
		Username:      "alice",
		ChessDaily:    models.Some(1200),
		ChessRapid:    models.Some(1250),
		ChessBlitz:    models.Some(1300),
		ChessBullet:   models.Some(1350),
		Chess960Daily: models.Some(1100),
		Tactics:       models.Some(1500),
	}

	assert.Equal(t, []int{1200, 1250, 1300, 1350, 1100, 1500}, export.RatingVector(rec))
}

func TestRatingVector_MixedValuesKeepLiteralRatings(t *testing.T) {
	rec := &models.MemberRecord{
		Username:   "carol",
		ChessBlitz: models.Some(1432),
		// Lessons and PuzzleRush are not chart categories; setting them
		// must not influence the vector.
		Lessons:    models.Some(1800),
		PuzzleRush: models.Some(42),
	}

	assert.Equal(t, []int{800, 800, 1432, 800, 800, 800}, export.RatingVector(rec))
}

func TestRenderChart_WritesSeriesPerMember(t *testing.T) {
	r := models.NewRoster([]string{"alice", "Bob"})
	r.Get("alice").ChessBlitz = models.Some(1432)

	path := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, export.RenderChart(r, "mensa-argentina", path))

	page, err := os.ReadFile(path)
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "alice")
	assert.Contains(t, html, "Bob")
	assert.Contains(t, html, "mensa-argentina")
	assert.Contains(t, html, "Daily 960")
}
