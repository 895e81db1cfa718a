package chesscom

import "context"

// ClientInterface defines the interface for chess.com public API operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	FetchClubMembers(ctx context.Context, clubID string) (map[string][]ClubMember, error)
	FetchPlayerProfile(ctx context.Context, username string) (*PlayerProfile, error)
	FetchPlayerStats(ctx context.Context, username string) (*PlayerStats, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
