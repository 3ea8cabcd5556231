package league

import "fmt"

// Game is one parsed result line.
type Game struct {
	TeamA  string
	ScoreA uint64
	TeamB  string
	ScoreB uint64
}

// Points maps a team name to its accumulated points.
type Points map[string]int

// Ranking holds the standings info for one team.
type Ranking struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Points int    `json:"points"`
	Label  string `json:"label"`
}

func (r Ranking) String() string {
	return fmt.Sprintf("%d. %s, %d %s", r.Rank, r.Team, r.Points, r.Label)
}

// Outcome is the result of a game from one side's point of view.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "loss"
	}
}

// Points returns what the outcome is worth in the table.
func (o Outcome) Points() int {
	switch o {
	case Win:
		return 3
	case Draw:
		return 1
	default:
		return 0
	}
}

// Compare returns the outcome for the side that scored own against opp.
func Compare(own, opp uint64) Outcome {
	switch {
	case own > opp:
		return Win
	case own < opp:
		return Loss
	default:
		return Draw
	}
}
