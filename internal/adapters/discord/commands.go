package discord

import "github.com/bwmarrin/discordgo"

const (
	cmdPartidos    = "partidos"
	optEquipo      = "equipo"
	optCompeticion = "competicion"
)

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        cmdPartidos,
		Description: "Busca los partidos de un equipo.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         optEquipo,
				Description:  "Nombre del equipo (obligatorio)",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         optCompeticion,
				Description:  "Competición o código de la competición (opcional)",
				Required:     false,
				Autocomplete: true,
			},
		},
	},
}
