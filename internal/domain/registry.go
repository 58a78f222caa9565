package domain

import (
	"fmt"
	"strings"
)

// IDs de football-data.org. Para sumar un equipo basta con agregarlo acá.
var teams = map[string]int{
	"barcelona": 81,
	"liverpool": 64,
	"madrid":    86,
	"juventus":  109,
	"manunited": 66,
	"arsenal":   57,
	"mancity":   65,
	"inter":     108,
	"milan":     98,
	"bayern":    5,
	"dortmund":  4,
	"palmeiras": 1769,
}

// orden fijo para el autocompletado (los maps no lo garantizan)
var teamOrder = []string{
	"barcelona", "liverpool", "madrid", "juventus", "manunited", "arsenal",
	"mancity", "inter", "milan", "bayern", "dortmund", "palmeiras",
}

// Competition es una entrada del registro de competiciones.
type Competition struct {
	Label string
	Code  string
}

var competitions = []Competition{
	{Label: "LaLiga", Code: "PD"},
	{Label: "SerieA", Code: "SA"},
	{Label: "Bundesliga", Code: "BL1"},
	{Label: "PremierLeague", Code: "PL"},
	{Label: "Brasileirao", Code: "BSA"},
	{Label: "ChampionsLeague", Code: "CL"},
	{Label: "CopaLibertadores", Code: "CLI"},
	{Label: "EuropaLeague", Code: "EL"},
}

// UnknownTeamError: el nombre no está en el registro. El mensaje va directo al usuario.
type UnknownTeamError struct {
	Input string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("El equipo \"%s\" no está en la lista de equipos conocidos.", e.Input)
}

// TeamID resuelve el nombre (sin importar mayúsculas) al ID del proveedor.
func TeamID(name string) (int, error) {
	id, ok := teams[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &UnknownTeamError{Input: name}
	}
	return id, nil
}

// ResolveCompetition acepta una etiqueta ("LaLiga") o un código ("PD").
// Si no es ninguna de las dos se devuelve tal cual (trim) como código y etiqueta.
// ok=false sólo cuando no hay filtro.
func ResolveCompetition(input string) (Competition, bool) {
	in := strings.TrimSpace(input)
	if in == "" {
		return Competition{}, false
	}
	for _, c := range competitions {
		if strings.EqualFold(c.Label, in) {
			return c, true
		}
	}
	for _, c := range competitions {
		if strings.EqualFold(c.Code, in) {
			return c, true
		}
	}
	return Competition{Label: in, Code: in}, true
}
