package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxSuggestions es el tope de opciones que acepta Discord en un autocompletado.
const MaxSuggestions = 25

type Suggestion struct {
	Name  string
	Value string
}

// SuggestTeams filtra por prefijo; el value es la clave del registro.
func SuggestTeams(prefix string) []Suggestion {
	p := strings.ToLower(strings.TrimSpace(prefix))
	// un Caser no se comparte entre goroutines
	title := cases.Title(language.Spanish)
	out := []Suggestion{}
	for _, key := range teamOrder {
		if len(out) == MaxSuggestions {
			break
		}
		if strings.HasPrefix(key, p) {
			out = append(out, Suggestion{Name: title.String(key), Value: key})
		}
	}
	return out
}

// SuggestCompetitions filtra por prefijo de la etiqueta; el value es el código real.
func SuggestCompetitions(prefix string) []Suggestion {
	p := strings.ToLower(strings.TrimSpace(prefix))
	out := []Suggestion{}
	for _, c := range competitions {
		if len(out) == MaxSuggestions {
			break
		}
		if strings.HasPrefix(strings.ToLower(c.Label), p) {
			out = append(out, Suggestion{Name: c.Label, Value: c.Code})
		}
	}
	return out
}
