package league

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseGames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Game
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "multi-word team name",
			text: "Tarantulas 1, FC Awesome 0",
			want: []Game{{TeamA: "Tarantulas", ScoreA: 1, TeamB: "FC Awesome", ScoreB: 0}},
		},
		{
			name: "irregular whitespace is trimmed",
			text: "   Lions    3 ,   Snakes\t3  ",
			want: []Game{{TeamA: "Lions", ScoreA: 3, TeamB: "Snakes", ScoreB: 3}},
		},
		{
			name: "non-matching lines are skipped",
			text: "Season 2024\n\nLions 4, Grouches 0\nno result here\n",
			want: []Game{{TeamA: "Lions", ScoreA: 4, TeamB: "Grouches", ScoreB: 0}},
		},
		{
			name: "names never span lines",
			text: "header line\nLions 1, Snakes 2",
			want: []Game{{TeamA: "Lions", ScoreA: 1, TeamB: "Snakes", ScoreB: 2}},
		},
		{
			name: "windows line endings",
			text: "Lions 1, Snakes 2\r\nTarantulas 3, Grouches 0\r\n",
			want: []Game{
				{TeamA: "Lions", ScoreA: 1, TeamB: "Snakes", ScoreB: 2},
				{TeamA: "Tarantulas", ScoreA: 3, TeamB: "Grouches", ScoreB: 0},
			},
		},
		{
			name: "multi-digit scores compare numerically",
			text: "Lions 10, Snakes 9",
			want: []Game{{TeamA: "Lions", ScoreA: 10, TeamB: "Snakes", ScoreB: 9}},
		},
		{
			name: "overflowing score drops the line",
			text: "Lions 99999999999999999999999, Snakes 1",
			want: nil,
		},
		{
			name: "missing second score",
			text: "Lions 3, Snakes",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(ParseGames(tt.text))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseGames() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseGamesRestartable(t *testing.T) {
	games := ParseGames(CheckFixture)

	first := slices.Collect(games)
	second := slices.Collect(games)

	assert.Len(t, first, 5)
	assert.Equal(t, first, second)
}

func TestParseGamesStopsEarly(t *testing.T) {
	var got []Game
	for g := range ParseGames(CheckFixture) {
		got = append(got, g)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
	assert.Equal(t, "FC Awesome", got[1].TeamB)
}

func TestParserLogsSkippedLines(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	games := slices.Collect(NewParser(logger).Games("garbage\n\nLions 1, Snakes 0"))

	assert.Len(t, games, 1)
	assert.Contains(t, buf.String(), "skipping line without a game")
	assert.Contains(t, buf.String(), "text=garbage")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("skipping")), "blank lines are not reported")
}
