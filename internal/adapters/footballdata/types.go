package footballdata

import "github.com/jose-valero/partidos-bot/internal/domain"

// --- Teams / matches ---
// Matches queda en nil si la respuesta no trae la lista.
type teamMatchesDTO struct {
	Matches []domain.Fixture `json:"matches"`
}
