package services

import (
	"context"

	"github.com/vytor/clubstats/internal/logger"
	"github.com/vytor/clubstats/internal/models"
	"github.com/vytor/clubstats/internal/worker"
)

// ReportService runs the full roster/profile/stats pipeline and returns
// the aggregated record set ready for export.
type ReportService interface {
	BuildReport(ctx context.Context, clubID string) (*models.Roster, error)
}

type reportService struct {
	roster  RosterService
	profile ProfileService
	stats   StatsService
	workers int
}

// NewReportService creates a new ReportService. workers caps the number
// of member fetches in flight within each enrichment stage.
func NewReportService(roster RosterService, profile ProfileService, stats StatsService, workers int) ReportService {
	return &reportService{
		roster:  roster,
		profile: profile,
		stats:   stats,
		workers: workers,
	}
}

// BuildReport runs the three stages strictly in order. Each stage is a
// barrier: no member enters stats enrichment before every member has
// finished profile enrichment. The first fetch failure aborts the run
// and the partially built roster is discarded by the caller.
func (s *reportService) BuildReport(ctx context.Context, clubID string) (*models.Roster, error) {
	log := logger.FromContext(ctx)

	log.Info("Getting list of club members from chess.com...")
	roster, err := s.roster.LoadRoster(ctx, clubID)
	if err != nil {
		return nil, err
	}
	log.Info("Club name: %s", clubID)
	log.Info("Number of club members: %d", roster.Len())

	records := roster.AllInOrder()

	log.Info("Getting player information from chess.com...")
	err = worker.RunStage(ctx, "profiles", s.workers, records, func(ctx context.Context, rec *models.MemberRecord) error {
		return s.profile.EnrichProfile(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Getting stats information from chess.com...")
	err = worker.RunStage(ctx, "stats", s.workers, records, func(ctx context.Context, rec *models.MemberRecord) error {
		return s.stats.EnrichStats(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	return roster, nil
}
