package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/partidos-bot/internal/app/service"
	"github.com/jose-valero/partidos-bot/internal/metrics"
)

type Router struct {
	s       *discordgo.Session
	guildID string

	matches *service.MatchService
	metrics metrics.Metrics
	timeout time.Duration // tope por comando
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	matches *service.MatchService,
	m metrics.Metrics,
	timeout time.Duration,
) *Router {
	return &Router{
		s:       s,
		guildID: guildID,
		matches: matches,
		metrics: m,
		timeout: timeout,
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		r.dispatch(s, ic)
	})
}

func (r *Router) dispatch(s responder, ic *discordgo.InteractionCreate) {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		r.handleSlashCommand(s, ic)
	case discordgo.InteractionApplicationCommandAutocomplete:
		r.handleAutocomplete(s, ic)
	}
}
