package league

import (
	"io"
	"iter"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// A game is "<name> <score>, <name> <score>". Names cannot hold digits, that
// is how the name/score boundary is found.
var gameRegex = regexp.MustCompile(`\s*(?P<teamA>[^\d\n]+)\s+(?P<scoreA>\d+)\s*,\s*(?P<teamB>[^\d\n]+)\s+(?P<scoreB>\d+)`)

var (
	idxTeamA  = gameRegex.SubexpIndex("teamA")
	idxScoreA = gameRegex.SubexpIndex("scoreA")
	idxTeamB  = gameRegex.SubexpIndex("teamB")
	idxScoreB = gameRegex.SubexpIndex("scoreB")
)

// Parser extracts games from free text. Lines that hold no game are skipped.
type Parser struct {
	logger *slog.Logger
}

// NewParser returns a parser that reports skipped lines to logger at debug
// level. A nil logger discards them.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{logger: logger}
}

var defaultParser = NewParser(nil)

// ParseGames returns the games found in text, in source order.
func ParseGames(text string) iter.Seq[Game] {
	return defaultParser.Games(text)
}

// Games returns the games found in text, in source order. The sequence can be
// ranged over any number of times.
func (p *Parser) Games(text string) iter.Seq[Game] {
	return func(yield func(Game) bool) {
		for n, line := range strings.Split(text, "\n") {
			matches := gameRegex.FindAllStringSubmatch(line, -1)
			found := false
			for _, m := range matches {
				g, ok := toGame(m)
				if !ok {
					continue
				}
				found = true
				if !yield(g) {
					return
				}
			}
			if !found && strings.TrimSpace(line) != "" {
				p.logger.Debug("skipping line without a game", "line", n+1, "text", line)
			}
		}
	}
}

func toGame(m []string) (Game, bool) {
	teamA := strings.TrimSpace(m[idxTeamA])
	teamB := strings.TrimSpace(m[idxTeamB])
	if teamA == "" || teamB == "" {
		return Game{}, false
	}
	scoreA, err := strconv.ParseUint(m[idxScoreA], 10, 64)
	if err != nil {
		return Game{}, false
	}
	scoreB, err := strconv.ParseUint(m[idxScoreB], 10, 64)
	if err != nil {
		return Game{}, false
	}
	return Game{TeamA: teamA, ScoreA: scoreA, TeamB: teamB, ScoreB: scoreB}, true
}
