package services

import (
	"context"

	"github.com/vytor/clubstats/internal/chesscom"
	"github.com/vytor/clubstats/internal/logger"
	"github.com/vytor/clubstats/internal/models"
)

// ProfileService merges player-profile attributes into member records.
type ProfileService interface {
	EnrichProfile(ctx context.Context, rec *models.MemberRecord) error
}

type profileService struct {
	client chesscom.ClientInterface
}

// NewProfileService creates a new ProfileService
func NewProfileService(client chesscom.ClientInterface) ProfileService {
	return &profileService{client: client}
}

// EnrichProfile fetches the profile for rec's username and sets the
// name, location and status fields. Players may not disclose any of
// them; an absent field leaves the record field unspecified and is
// never an error. Only a fetch failure propagates.
func (s *profileService) EnrichProfile(ctx context.Context, rec *models.MemberRecord) error {
	log := logger.FromContext(ctx)
	log.Debug("enriching profile: username=%s", rec.Username)

	profile, err := s.client.FetchPlayerProfile(ctx, rec.Username)
	if err != nil {
		log.Error("failed to enrich profile for %s: %v", rec.Username, err)
		return err
	}

	rec.Name = optionalString(profile.Name)
	rec.Location = optionalString(profile.Location)
	rec.Status = optionalString(profile.Status)
	return nil
}

func optionalString(p *string) models.Optional[string] {
	if p == nil {
		return models.None[string]()
	}
	return models.Some(*p)
}
