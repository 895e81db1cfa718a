package export

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vytor/clubstats/internal/logger"
	"github.com/vytor/clubstats/internal/models"
)

// RatingFloor substitutes for a missing rating in the chart so every
// series spans all categories.
const RatingFloor = 800

// ChartCategories is the fixed category order of the comparison chart.
var ChartCategories = []string{"Daily", "Rapid", "Blitz", "Bullet", "Daily 960", "Tactics"}

// RatingVector derives the chart values for one member, in category
// order, with unspecified ratings replaced by RatingFloor.
func RatingVector(rec *models.MemberRecord) []int {
	return []int{
		rec.ChessDaily.ValueOr(RatingFloor),
		rec.ChessRapid.ValueOr(RatingFloor),
		rec.ChessBlitz.ValueOr(RatingFloor),
		rec.ChessBullet.ValueOr(RatingFloor),
		rec.Chess960Daily.ValueOr(RatingFloor),
		rec.Tactics.ValueOr(RatingFloor),
	}
}

// RenderChart renders one labeled line series per member across the six
// rating categories and writes the page to path.
func RenderChart(roster *models.Roster, clubID, path string) error {
	log := logger.Default().WithPrefix("export")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Ranking of players of club " + clubID}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Game type"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ELO"}),
	)

	line.SetXAxis(ChartCategories)
	for _, rec := range roster.AllInOrder() {
		vector := RatingVector(rec)
		data := make([]opts.LineData, len(vector))
		for i, v := range vector {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(rec.Username, data)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return err
	}

	log.Info("wrote ratings chart for %d members to %s", roster.Len(), path)
	return nil
}
