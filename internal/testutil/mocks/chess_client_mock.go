package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/clubstats/internal/chesscom"
)

// MockChessClient is a mock implementation of chesscom.ClientInterface
type MockChessClient struct {
	mock.Mock
}

func (m *MockChessClient) FetchClubMembers(ctx context.Context, clubID string) (map[string][]chesscom.ClubMember, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]chesscom.ClubMember), args.Error(1)
}

func (m *MockChessClient) FetchPlayerProfile(ctx context.Context, username string) (*chesscom.PlayerProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chesscom.PlayerProfile), args.Error(1)
}

func (m *MockChessClient) FetchPlayerStats(ctx context.Context, username string) (*chesscom.PlayerStats, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chesscom.PlayerStats), args.Error(1)
}
