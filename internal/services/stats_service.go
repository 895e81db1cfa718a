package services

import (
	"context"

	"github.com/vytor/clubstats/internal/chesscom"
	"github.com/vytor/clubstats/internal/logger"
	"github.com/vytor/clubstats/internal/models"
)

// StatsService merges rating and puzzle statistics into member records.
type StatsService interface {
	EnrichStats(ctx context.Context, rec *models.MemberRecord) error
}

type statsService struct {
	client chesscom.ClientInterface
}

// NewStatsService creates a new StatsService
func NewStatsService(client chesscom.ClientInterface) StatsService {
	return &statsService{client: client}
}

// EnrichStats fetches the stats for rec's username and fills in the
// rating fields. Game-mode ratings live under <mode>.<selector>.rating,
// where the selector is "last" (most recent) for the playing modes and
// "highest" (peak) for tactics and lessons. A missing segment anywhere
// along a path leaves only that field unspecified; siblings are
// unaffected. Only a fetch failure propagates.
func (s *statsService) EnrichStats(ctx context.Context, rec *models.MemberRecord) error {
	log := logger.FromContext(ctx)
	log.Debug("enriching stats: username=%s", rec.Username)

	stats, err := s.client.FetchPlayerStats(ctx, rec.Username)
	if err != nil {
		log.Error("failed to enrich stats for %s: %v", rec.Username, err)
		return err
	}

	rec.Fide = fideRating(stats.Fide)
	rec.PuzzleRush = puzzleRushBest(stats.PuzzleRush)

	rec.ChessDaily = lastRating(stats.ChessDaily)
	rec.ChessRapid = lastRating(stats.ChessRapid)
	rec.ChessBlitz = lastRating(stats.ChessBlitz)
	rec.ChessBullet = lastRating(stats.ChessBullet)
	rec.Chess960Daily = lastRating(stats.Chess960Daily)
	rec.Tactics = highestRating(stats.Tactics)
	rec.Lessons = highestRating(stats.Lessons)
	return nil
}

// fideRating normalizes the FIDE field. The API reports 0 for players
// without a FIDE rating, so zero means absent here.
func fideRating(p *int) models.Optional[int] {
	if p == nil || *p == 0 {
		return models.None[int]()
	}
	return models.Some(*p)
}

func puzzleRushBest(pr *chesscom.PuzzleRushStats) models.Optional[int] {
	if pr == nil || pr.Best == nil || pr.Best.Score == nil {
		return models.None[int]()
	}
	return models.Some(*pr.Best.Score)
}

func lastRating(mode *chesscom.GameModeStats) models.Optional[int] {
	if mode == nil || mode.Last == nil || mode.Last.Rating == nil {
		return models.None[int]()
	}
	return models.Some(*mode.Last.Rating)
}

func highestRating(mode *chesscom.GameModeStats) models.Optional[int] {
	if mode == nil || mode.Highest == nil || mode.Highest.Rating == nil {
		return models.None[int]()
	}
	return models.Some(*mode.Highest.Rating)
}
