package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/jose-valero/partidos-bot/internal/domain"
)

func (r *Router) handleAutocomplete(s responder, ic *discordgo.InteractionCreate) {
	data := ic.ApplicationCommandData()
	if data.Name != cmdPartidos {
		return
	}
	opt, ok := focusedOption(data.Options)
	if !ok {
		return
	}

	var suggestions []domain.Suggestion
	switch opt.Name {
	case optEquipo:
		suggestions = domain.SuggestTeams(stringValue(opt))
	case optCompeticion:
		suggestions = domain.SuggestCompetitions(stringValue(opt))
	default:
		return
	}
	r.metrics.IncAutocomplete(opt.Name)

	if err := RespondChoices(s, ic, toChoices(suggestions)); err != nil {
		log.Warn("autocomplete: respond failed", "option", opt.Name, "err", err)
	}
}

func toChoices(in []domain.Suggestion) []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(in))
	for _, sg := range in {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: sg.Name, Value: sg.Value})
	}
	return out
}
