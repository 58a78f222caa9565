package service

import (
	"fmt"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/partidos-bot/internal/domain"
)

func TestReplyRendersBlock(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	f := Formatter{Loc: madrid}
	got := f.Reply("barcelona", "", []domain.Match{{
		Competition:  "Primera Division",
		HomeTeam:     "FC Barcelona",
		AwayTeam:     "Real Madrid CF",
		Date:         "2030-01-20T20:00:00Z",
		Status:       "TIMED",
		HomeTeamLogo: "https://crests.football-data.org/81.svg",
	}})

	assert.Equal(t,
		"**Primera Division**\nFC Barcelona https://crests.football-data.org/81.svg vs Real Madrid CF\n📅 20/01/2030, 21:00:00 | Estado: TIMED",
		got)
}

func TestReplyTruncatesToFiveInOrder(t *testing.T) {
	matches := make([]domain.Match, 0, 8)
	for i := 1; i <= 8; i++ {
		matches = append(matches, domain.Match{
			Competition: "PL",
			HomeTeam:    fmt.Sprintf("Home%d", i),
			AwayTeam:    "Away",
			Date:        "2030-01-20T20:00:00Z",
			Status:      "SCHEDULED",
		})
	}

	got := Formatter{}.Reply("arsenal", "", matches)
	blocks := strings.Split(got, "\n\n")
	require.Len(t, blocks, MaxListed)
	for i, b := range blocks {
		assert.Contains(t, b, fmt.Sprintf("Home%d vs Away", i+1))
	}
	assert.NotContains(t, got, "Home6")
}

func TestReplyEmpty(t *testing.T) {
	assert.Equal(t,
		"No se encontraron partidos para el equipo **Bayern** a partir de hoy.",
		Formatter{}.Reply("Bayern", "", nil))
	assert.Equal(t,
		"No se encontraron partidos para el equipo **Bayern** en la competición **Bundesliga** a partir de hoy.",
		Formatter{}.Reply("Bayern", "Bundesliga", []domain.Match{}))
}

func TestReplyKeepsRawDateWhenUnparseable(t *testing.T) {
	got := Formatter{}.Reply("milan", "", []domain.Match{{
		Competition: "Serie A", HomeTeam: "AC Milan", AwayTeam: "FC Internazionale Milano",
		Date: "pronto", Status: "POSTPONED",
	}})
	assert.Contains(t, got, "📅 pronto | Estado: POSTPONED")
}
