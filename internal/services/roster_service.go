package services

import (
	"context"

	"github.com/vytor/clubstats/internal/chesscom"
	"github.com/vytor/clubstats/internal/logger"
	"github.com/vytor/clubstats/internal/models"
)

// RosterService discovers the club membership and seeds the record set.
type RosterService interface {
	LoadRoster(ctx context.Context, clubID string) (*models.Roster, error)
}

type rosterService struct {
	client chesscom.ClientInterface
}

// NewRosterService creates a new RosterService
func NewRosterService(client chesscom.ClientInterface) RosterService {
	return &rosterService{client: client}
}

// LoadRoster fetches the member list and builds the roster from the union
// of usernames across all membership-duration buckets. The bucket names
// themselves are irrelevant; a player listed in several buckets collapses
// to one record. The result is ordered ascending, case-sensitive.
func (s *rosterService) LoadRoster(ctx context.Context, clubID string) (*models.Roster, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading roster: club=%s", clubID)

	buckets, err := s.client.FetchClubMembers(ctx, clubID)
	if err != nil {
		log.Error("failed to load roster: %v", err)
		return nil, err
	}

	var usernames []string
	for _, members := range buckets {
		for _, m := range members {
			if m.Username == "" {
				log.Warn("skipping member entry without username")
				continue
			}
			usernames = append(usernames, m.Username)
		}
	}

	roster := models.NewRoster(usernames)
	log.Debug("roster loaded: %d distinct members from %d entries", roster.Len(), len(usernames))
	return roster, nil
}
