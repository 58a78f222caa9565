package discord

import "github.com/bwmarrin/discordgo"

// optStr busca una opción de tipo string por nombre (también dentro de subcomandos).
func optStr(ic *discordgo.InteractionCreate, name string) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand && ic.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return stringValue(o), true
		}
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			for _, so := range o.Options {
				if so.Name == name && so.Type == discordgo.ApplicationCommandOptionString {
					return stringValue(so), true
				}
			}
		}
	}
	return "", false
}

func focusedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, o := range opts {
		if o.Focused {
			return o, true
		}
	}
	return nil, false
}

// StringValue de discordgo hace panic si el tipo no cuadra
func stringValue(o *discordgo.ApplicationCommandInteractionDataOption) string {
	v, _ := o.Value.(string)
	return v
}

func userID(ic *discordgo.InteractionCreate) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}
