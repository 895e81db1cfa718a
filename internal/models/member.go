package models

import "sort"

// Optional is a two-state value: unspecified or carrying a value of T.
// Absent upstream fields stay unspecified instead of degrading to a zero
// value, so a missing rating and a rating of 0 remain distinguishable
// everywhere except where the data contract says otherwise (FIDE).
type Optional[T any] struct {
	specified bool
	value     T
}

// None returns an unspecified Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] { return Optional[T]{specified: true, value: v} }

// IsSpecified reports whether the Optional carries a value.
func (o Optional[T]) IsSpecified() bool { return o.specified }

// Value returns the carried value, or the zero value when unspecified.
func (o Optional[T]) Value() T { return o.value }

// ValueOr returns the carried value, or def when unspecified.
func (o Optional[T]) ValueOr(def T) T {
	if o.specified {
		return o.value
	}
	return def
}

// MemberRecord is the merged view of one club member across the roster,
// profile and stats endpoints. Username is the stable identity; every
// other field is independently optional.
type MemberRecord struct {
	Username string

	// Profile fields
	Name     Optional[string]
	Location Optional[string]
	Status   Optional[string]

	// Stats fields
	Fide          Optional[int]
	ChessDaily    Optional[int]
	ChessRapid    Optional[int]
	ChessBlitz    Optional[int]
	ChessBullet   Optional[int]
	Chess960Daily Optional[int]
	Tactics       Optional[int]
	Lessons       Optional[int]
	PuzzleRush    Optional[int]
}

// Roster is the keyed record set shared by the pipeline stages. Records
// are keyed by username, so a member listed under several membership
// duration buckets still gets exactly one record. The iteration order is
// fixed at construction (ascending, case-sensitive username sort) and
// never changes afterward.
type Roster struct {
	order   []string
	records map[string]*MemberRecord
}

// NewRoster builds a roster from the given usernames, collapsing
// duplicates and sorting the result.
func NewRoster(usernames []string) *Roster {
	r := &Roster{records: make(map[string]*MemberRecord, len(usernames))}
	for _, u := range usernames {
		r.Get(u)
	}
	return r
}

// Get returns the record for username, creating it on first touch.
// Creation keeps the order slice sorted.
func (r *Roster) Get(username string) *MemberRecord {
	if rec, ok := r.records[username]; ok {
		return rec
	}
	rec := &MemberRecord{Username: username}
	r.records[username] = rec

	i := sort.SearchStrings(r.order, username)
	r.order = append(r.order, "")
	copy(r.order[i+1:], r.order[i:])
	r.order[i] = username
	return rec
}

// AllInOrder returns every record in ascending username order.
func (r *Roster) AllInOrder() []*MemberRecord {
	out := make([]*MemberRecord, 0, len(r.order))
	for _, u := range r.order {
		out = append(out, r.records[u])
	}
	return out
}

// Usernames returns the usernames in ascending order.
func (r *Roster) Usernames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of distinct members.
func (r *Roster) Len() int { return len(r.order) }
