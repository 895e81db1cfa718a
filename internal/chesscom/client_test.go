package chesscom_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/clubstats/internal/apperr"
	"github.com/vytor/clubstats/internal/chesscom"
)

func newTestClient(url string, opts ...chesscom.ClientOption) *chesscom.Client {
	base := []chesscom.ClientOption{
		chesscom.WithBaseURL(url),
		chesscom.WithRateLimit(1000),
		chesscom.WithRetryInterval(time.Millisecond),
		chesscom.WithTimeout(2 * time.Second),
	}
	return chesscom.New(append(base, opts...)...)
}

func TestFetchClubMembers_DecodesBuckets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/club/mensa-argentina/members", r.URL.Path)
		w.Write([]byte(`{
			"weekly": [{"username": "alice", "joined": 1577836800}],
			"all_time": [{"username": "Bob"}, {"username": "alice"}]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	buckets, err := client.FetchClubMembers(context.Background(), "mensa-argentina")

	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "alice", buckets["weekly"][0].Username)
	assert.Len(t, buckets["all_time"], 2)
}

func TestFetchPlayerProfile_AbsentFieldsStayNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/player/alice", r.URL.Path)
		w.Write([]byte(`{"name": "Alice", "country": "https://api.chess.com/pub/country/AR"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	profile, err := client.FetchPlayerProfile(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Alice", *profile.Name)
	assert.Nil(t, profile.Location)
	assert.Nil(t, profile.Status)
}

func TestFetchPlayerStats_DecodesNestedRatings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/player/alice/stats", r.URL.Path)
		w.Write([]byte(`{
			"fide": 2100,
			"chess_blitz": {"last": {"rating": 1432, "date": 1700000000}, "best": {"rating": 1500}},
			"tactics": {"highest": {"rating": 1500}, "lowest": {"rating": 400}},
			"puzzle_rush": {"best": {"score": 42}}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	stats, err := client.FetchPlayerStats(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, stats.Fide)
	assert.Equal(t, 2100, *stats.Fide)

	require.NotNil(t, stats.ChessBlitz)
	require.NotNil(t, stats.ChessBlitz.Last)
	require.NotNil(t, stats.ChessBlitz.Last.Rating)
	assert.Equal(t, 1432, *stats.ChessBlitz.Last.Rating)
	assert.Nil(t, stats.ChessBlitz.Highest)

	require.NotNil(t, stats.Tactics)
	require.NotNil(t, stats.Tactics.Highest)
	assert.Equal(t, 1500, *stats.Tactics.Highest.Rating)
	assert.Nil(t, stats.Tactics.Last)

	require.NotNil(t, stats.PuzzleRush)
	require.NotNil(t, stats.PuzzleRush.Best)
	assert.Equal(t, 42, *stats.PuzzleRush.Best.Score)

	assert.Nil(t, stats.ChessDaily)
	assert.Nil(t, stats.Lessons)
}

func TestGet_NotFoundIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, chesscom.WithMaxTries(3))
	_, err := client.FetchPlayerProfile(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, apperr.IsFetch(err))
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestGet_RetriesServerErrorsThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"name": "Alice"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, chesscom.WithMaxTries(3))
	profile, err := client.FetchPlayerProfile(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, profile.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGet_ExhaustedRetriesIsFetchError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, chesscom.WithMaxTries(2))
	_, err := client.FetchPlayerProfile(context.Background(), "alice")

	require.Error(t, err)
	assert.True(t, apperr.IsFetch(err))
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_TransportFailureIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(srv.URL, chesscom.WithMaxTries(2))
	_, err := client.FetchClubMembers(context.Background(), "mensa-argentina")

	require.Error(t, err)
	assert.True(t, apperr.IsFetch(err))
}

func TestGet_MalformedBodyIsPermanentFetchError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"name": `))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, chesscom.WithMaxTries(3))
	_, err := client.FetchPlayerProfile(context.Background(), "alice")

	require.Error(t, err)
	assert.True(t, apperr.IsFetch(err))
	assert.Equal(t, int32(1), calls.Load(), "decode failures must not be retried")
}
