package league

import (
	"fmt"
	"io"
	"iter"
	"sort"

	"golang.org/x/text/cases"
)

// CalculatePoints folds games into a points table. Every team that appears in
// a game gets an entry, even if it never scores.
func CalculatePoints(games iter.Seq[Game]) Points {
	points := make(Points)
	for g := range games {
		points[g.TeamA] += Compare(g.ScoreA, g.ScoreB).Points()
		points[g.TeamB] += Compare(g.ScoreB, g.ScoreA).Points()
	}
	return points
}

// Label returns the unit printed after a points value.
func Label(points int) string {
	if points == 1 {
		return "pt"
	}
	return "pts"
}

// Rank orders teams by points, highest first, and assigns competition ranks:
// teams on equal points share a rank and the next rank skips past the group.
// Equal-point teams are listed by name, case-insensitively.
func Rank(points Points) []Ranking {
	type row struct {
		team, key string
		points    int
	}

	// Casers carry state, so each call gets its own.
	fold := cases.Fold()
	rows := make([]row, 0, len(points))
	for team, pts := range points {
		rows = append(rows, row{team: team, key: fold.String(team), points: pts})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.points != b.points {
			return a.points > b.points
		}
		if a.key != b.key {
			return a.key < b.key
		}
		return a.team < b.team
	})

	rankings := make([]Ranking, 0, len(rows))
	rank, position := 0, 0
	for i, r := range rows {
		position++
		if i == 0 || r.points != rows[i-1].points {
			rank = position
		}
		rankings = append(rankings, Ranking{
			Rank:   rank,
			Team:   r.team,
			Points: r.points,
			Label:  Label(r.points),
		})
	}
	return rankings
}

// RankText runs the whole pipeline over raw game text.
func RankText(text string) []Ranking {
	return Rank(CalculatePoints(ParseGames(text)))
}

// WriteRankings prints one line per ranking entry.
func WriteRankings(w io.Writer, rankings []Ranking) error {
	for _, r := range rankings {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return fmt.Errorf("writing ranking for %s: %w", r.Team, err)
		}
	}
	return nil
}
