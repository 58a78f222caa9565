package footballdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jose-valero/partidos-bot/internal/domain"
)

// TeamMatches: GET /teams/{id}/matches, con ?competitions= si viene código.
// Devuelve los partidos en el orden que manda la API, sin filtrar por fecha.
func (c *Client) TeamMatches(ctx context.Context, teamID int, competitionCode string) ([]domain.Fixture, error) {
	var q url.Values
	if competitionCode != "" {
		q = url.Values{}
		q.Set("competitions", competitionCode)
	}

	var dto teamMatchesDTO
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%d/matches", teamID), q, &dto); err != nil {
		return nil, err
	}
	if dto.Matches == nil {
		return nil, fmt.Errorf("%w: missing matches list", ErrMalformedResponse)
	}
	return dto.Matches, nil
}
