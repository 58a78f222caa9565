package footballdata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teamMatchesJSON = `{
	"filters": { "competitions": "PD" },
	"resultSet": { "count": 2 },
	"matches": [
		{
			"id": 1,
			"utcDate": "2030-01-10T20:00:00Z",
			"status": "TIMED",
			"competition": { "id": 2014, "name": "Primera Division" },
			"homeTeam": { "id": 81, "name": "FC Barcelona", "crest": "https://crests.football-data.org/81.svg" },
			"awayTeam": { "id": 86, "name": "Real Madrid CF", "crest": "https://crests.football-data.org/86.png" }
		},
		{
			"id": 2,
			"utcDate": "2030-01-17T18:30:00Z",
			"status": "SCHEDULED",
			"competition": { "id": 2014, "name": "Primera Division" },
			"homeTeam": { "id": 95, "name": "Valencia CF" },
			"awayTeam": { "id": 81, "name": "FC Barcelona" }
		}
	]
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return New("secret-key", WithBaseURL(server.URL+"/"), WithHTTPClient(server.Client()))
}

func TestTeamMatchesBuildsRequestAndDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/teams/81/matches", r.URL.Path)
		assert.Equal(t, "PD", r.URL.Query().Get("competitions"))
		assert.Equal(t, "secret-key", r.Header.Get("X-Auth-Token"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, teamMatchesJSON)
	})

	fixtures, err := c.TeamMatches(context.Background(), 81, "PD")
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	assert.Equal(t, "2030-01-10T20:00:00Z", fixtures[0].UTCDate)
	assert.Equal(t, "TIMED", fixtures[0].Status)
	assert.Equal(t, "Primera Division", fixtures[0].Competition.Name)
	assert.Equal(t, "FC Barcelona", fixtures[0].HomeTeam.Name)
	assert.Equal(t, "https://crests.football-data.org/86.png", fixtures[0].AwayTeam.Crest)
	assert.Equal(t, "Valencia CF", fixtures[1].HomeTeam.Name)
	assert.Empty(t, fixtures[1].HomeTeam.Crest)
}

func TestTeamMatchesWithoutCompetitionOmitsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams/5/matches", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		fmt.Fprint(w, `{"matches": []}`)
	})

	fixtures, err := c.TeamMatches(context.Background(), 5, "")
	require.NoError(t, err)
	assert.NotNil(t, fixtures)
	assert.Empty(t, fixtures)
}

func TestTeamMatchesNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no team", http.StatusNotFound)
	})

	_, err := c.TeamMatches(context.Background(), 999999, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamMatchesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, ` {"message": "The resource you are looking for is restricted."} `)
	})

	_, err := c.TeamMatches(context.Background(), 81, "CLI")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, `{"message": "The resource you are looking for is restricted."}`, apiErr.Body)
}

func TestTeamMatchesMalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"not json":     `<html>oops</html>`,
		"missing list": `{"count": 0}`,
		"null list":    `{"matches": null}`,
		"wrong type":   `{"matches": "none"}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			})
			_, err := c.TeamMatches(context.Background(), 81, "")
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestTeamMatchesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New("k", WithBaseURL(server.URL))
	_, err := c.TeamMatches(context.Background(), 81, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "football-data http")
}
