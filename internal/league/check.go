package league

import "fmt"

// CheckFixture is the known season used by SelfCheck.
const CheckFixture = `
        Lions 3, Snakes 3
        Tarantulas 1, FC Awesome 0
        Lions 1, FC Awesome 1
        Tarantulas 3, Snakes 1
        Lions 4, Grouches 0 `

// CheckPassed is printed when SelfCheck succeeds.
const CheckPassed = "Self-check passed"

// CheckError reports the first ranking that disagrees with the fixture.
type CheckError struct {
	Team  string
	Field string
	Want  any
	Got   any
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("self-check failed: %s: %s should be %v, got %v", e.Team, e.Field, e.Want, e.Got)
}

var checkRanks = map[string]int{
	"Tarantulas": 1,
	"Lions":      2,
	"FC Awesome": 3,
	"Snakes":     3,
	"Grouches":   5,
}

var checkPoints = map[string]int{
	"Tarantulas": 6,
	"Lions":      5,
	"FC Awesome": 1,
	"Snakes":     1,
	"Grouches":   0,
}

// SelfCheck ranks CheckFixture and verifies the result against the known
// standings. It returns a *CheckError describing the first violation.
func SelfCheck() error {
	return checkRankings(RankText(CheckFixture))
}

func checkRankings(rankings []Ranking) error {
	seen := make(map[string]bool, len(rankings))
	for _, r := range rankings {
		if r.Team == "FC" || r.Team == "Awesome" {
			return &CheckError{Team: r.Team, Field: "team name", Want: "FC Awesome", Got: r.Team}
		}
		want := "pts"
		if r.Points == 1 {
			want = "pt"
		}
		if r.Label != want {
			return &CheckError{Team: r.Team, Field: "label", Want: want, Got: r.Label}
		}
		wantRank, ok := checkRanks[r.Team]
		if !ok {
			return &CheckError{Team: r.Team, Field: "team", Want: "a fixture team", Got: r.Team}
		}
		if r.Points != checkPoints[r.Team] {
			return &CheckError{Team: r.Team, Field: "points", Want: checkPoints[r.Team], Got: r.Points}
		}
		if r.Rank != wantRank {
			return &CheckError{Team: r.Team, Field: "rank", Want: wantRank, Got: r.Rank}
		}
		seen[r.Team] = true
	}
	for team, rank := range checkRanks {
		if !seen[team] {
			return &CheckError{Team: team, Field: "rank", Want: rank, Got: "missing"}
		}
	}
	return nil
}
