// aca sólo se lee la interacción y se despacha al servicio; la lógica vive en app/service
package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/jose-valero/partidos-bot/internal/app/service"
)

func (r *Router) handleSlashCommand(s responder, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	log.Info("slash", "cmd", cmd.Name, "by", userID(ic), "guild", ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic in slash", "cmd", cmd.Name, "panic", rec)
			Reply(s, ic, "❌ Ocurrió un error inesperado procesando el comando.")
		}
	}()

	switch cmd.Name {
	case cmdPartidos:
		r.handlePartidos(s, ic)
	default:
		log.Warn("slash: comando desconocido", "cmd", cmd.Name)
	}
}

func (r *Router) handlePartidos(s responder, ic *discordgo.InteractionCreate) {
	defer step("cmd.partidos.total")()

	team, _ := optStr(ic, optEquipo)
	comp, _ := optStr(ic, optCompeticion)

	// la API puede tardar más de los 3s que da Discord
	_ = DeferResponse(s, ic)

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	msg, err := r.matches.Partidos(ctx, service.Query{
		GuildID:     ic.GuildID,
		UserID:      userID(ic),
		Team:        team,
		Competition: comp,
	})
	if err != nil {
		msg = service.UserMessage(err)
	}
	Reply(s, ic, msg)
}
