package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestTeamsByPrefix(t *testing.T) {
	got := SuggestTeams("MA")
	assert.Equal(t, []Suggestion{
		{Name: "Madrid", Value: "madrid"},
		{Name: "Manunited", Value: "manunited"},
		{Name: "Mancity", Value: "mancity"},
	}, got)
}

func TestSuggestTeamsEmptyPrefixListsAll(t *testing.T) {
	got := SuggestTeams("")
	assert.Len(t, got, len(teamOrder))
	assert.LessOrEqual(t, len(got), MaxSuggestions)
	assert.Equal(t, "Barcelona", got[0].Name)
}

func TestSuggestTeamsNoMatch(t *testing.T) {
	assert.Empty(t, SuggestTeams("zzz"))
}

func TestSuggestCompetitionsReturnsCodes(t *testing.T) {
	got := SuggestCompetitions("c")
	assert.Equal(t, []Suggestion{
		{Name: "ChampionsLeague", Value: "CL"},
		{Name: "CopaLibertadores", Value: "CLI"},
	}, got)
}
