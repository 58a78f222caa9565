package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/jose-valero/partidos-bot/internal/domain"
)

// MaxListed partidos como máximo por respuesta.
const MaxListed = 5

const dateLayout = "02/01/2006, 15:04:05"

type Formatter struct {
	Loc *time.Location
}

// Reply arma el mensaje; competition es la etiqueta a mostrar (vacía si no hubo filtro).
func (f Formatter) Reply(team, competition string, matches []domain.Match) string {
	if len(matches) == 0 {
		in := ""
		if competition != "" {
			in = fmt.Sprintf(" en la competición **%s**", competition)
		}
		return fmt.Sprintf("No se encontraron partidos para el equipo **%s**%s a partir de hoy.", team, in)
	}

	if len(matches) > MaxListed {
		matches = matches[:MaxListed]
	}
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, fmt.Sprintf("**%s**\n%s vs %s\n📅 %s | Estado: %s",
			m.Competition,
			withLogo(m.HomeTeam, m.HomeTeamLogo),
			withLogo(m.AwayTeam, m.AwayTeamLogo),
			f.date(m.Date),
			m.Status,
		))
	}
	return strings.Join(blocks, "\n\n")
}

func (f Formatter) date(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	loc := f.Loc
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout)
}

func withLogo(name, logo string) string {
	if logo == "" {
		return name
	}
	return name + " " + logo
}
