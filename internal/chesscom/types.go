package chesscom

// Response shapes for the chess.com public data API
// (https://www.chess.com/news/view/published-data-api). Fields that the
// API may omit are pointers so absence survives decoding; callers turn
// nil into unspecified values. Unknown keys are ignored by design.

// ClubMember is one entry of the club member-list endpoint. The endpoint
// groups members by membership duration (weekly, monthly, all_time); the
// same player can appear under more than one bucket.
type ClubMember struct {
	Username string `json:"username"`
	Joined   int64  `json:"joined"`
}

// PlayerProfile holds the profile fields the report cares about. Players
// are free to leave any of them undisclosed.
type PlayerProfile struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
}

// RatingSnapshot is a single recorded rating under a game mode.
type RatingSnapshot struct {
	Rating *int  `json:"rating"`
	Date   int64 `json:"date"`
}

// GameModeStats nests the recorded ratings of one game mode. "last" is
// the most recent rating, "highest" the peak. Either may be missing.
type GameModeStats struct {
	Last    *RatingSnapshot `json:"last"`
	Highest *RatingSnapshot `json:"highest"`
}

// PuzzleRushBest is the best recorded Puzzle Rush run.
type PuzzleRushBest struct {
	Score *int `json:"score"`
}

// PuzzleRushStats nests the Puzzle Rush records of a player.
type PuzzleRushStats struct {
	Best *PuzzleRushBest `json:"best"`
}

// PlayerStats is the player-stats endpoint response. Every branch is
// optional: a player who never played a mode simply has no key for it.
type PlayerStats struct {
	Fide          *int             `json:"fide"`
	ChessDaily    *GameModeStats   `json:"chess_daily"`
	ChessRapid    *GameModeStats   `json:"chess_rapid"`
	ChessBlitz    *GameModeStats   `json:"chess_blitz"`
	ChessBullet   *GameModeStats   `json:"chess_bullet"`
	Chess960Daily *GameModeStats   `json:"chess960_daily"`
	Tactics       *GameModeStats   `json:"tactics"`
	Lessons       *GameModeStats   `json:"lessons"`
	PuzzleRush    *PuzzleRushStats `json:"puzzle_rush"`
}
