// Package feed implements the live-match pipeline: fetching the provider's
// XML feed, deduplicating repeated match elements, and normalizing them into
// one flat Match record per logical match.
package feed

import "time"

// Team identifies one side of a match.
type Team struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// InningsFigures are one side's figures for a single innings.
type InningsFigures struct {
	Team     string  `json:"team"`
	Declare  bool    `json:"declare"`
	FollowOn bool    `json:"follow_on"`
	Overs    float64 `json:"overs"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
}

// Innings pairs batting and bowling figures for one innings.
type Innings struct {
	Batting InningsFigures `json:"batting"`
	Bowling InningsFigures `json:"bowling"`
}

// Match is the normalized record for one logical match. String fields the
// feed did not supply stay empty and are omitted from JSON; TeamOne,
// TeamTwo, and Score are nil when absent. StartTime is an absolute point in
// time; formatting it for display is the caller's job.
type Match struct {
	Datapath     string    `json:"datapath,omitempty"`
	ID           string    `json:"id,omitempty"`
	InningsCount string    `json:"innings_count,omitempty"`
	Ground       string    `json:"ground,omitempty"`
	Description  string    `json:"description,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	Format       string    `json:"format,omitempty"`
	MatchNum     string    `json:"match_num,omitempty"`
	TeamOne      *Team     `json:"team_one,omitempty"`
	TeamTwo      *Team     `json:"team_two,omitempty"`
	TossWon      string    `json:"toss_won,omitempty"`
	Decision     string    `json:"decision,omitempty"`
	State        string    `json:"state,omitempty"`
	ResultText   string    `json:"result_text,omitempty"`
	StartTime    time.Time `json:"time"`
	Score        []Innings `json:"score,omitempty"`
}

// record accumulates fields while duplicate feed entries for the same match
// are folded together. Flat string fields live in attrs keyed by output
// name, so a later duplicate overwrites per key without clobbering fields
// it omits.
type record struct {
	attrs map[string]string
	teams []Team
	start time.Time
	score []Innings
}

func newRecord() record {
	return record{attrs: make(map[string]string)}
}

// merge applies other on top of r, last write wins per field.
func (r *record) merge(other record) {
	for k, v := range other.attrs {
		r.attrs[k] = v
	}
	if other.teams != nil {
		r.teams = other.teams
	}
	if !other.start.IsZero() {
		r.start = other.start
	}
	if other.score != nil {
		r.score = other.score
	}
}

// finalize converts the merged field set into a Match.
func (r *record) finalize() Match {
	m := Match{
		Datapath:     r.attrs["datapath"],
		ID:           r.attrs["id"],
		InningsCount: r.attrs["innings_count"],
		Ground:       r.attrs["ground"],
		Description:  r.attrs["description"],
		City:         r.attrs["city"],
		Country:      r.attrs["country"],
		Format:       r.attrs["format"],
		MatchNum:     r.attrs["match_num"],
		TossWon:      r.attrs["toss_won"],
		Decision:     r.attrs["decision"],
		State:        r.attrs["state"],
		ResultText:   r.attrs["result_text"],
		StartTime:    r.start,
		Score:        r.score,
	}
	if len(r.teams) == 2 {
		m.TeamOne = &r.teams[0]
		m.TeamTwo = &r.teams[1]
	}
	return m
}
