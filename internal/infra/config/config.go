package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // hosts sin zoneinfo

	"github.com/charmbracelet/log"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // el bot registra /partidos sólo en este guild

	FootballAPIKey     string
	FootballAPIURL     string
	FootballAPITimeout time.Duration

	Port     string // opcional, default 3000
	Timezone string

	// opcional: sin DATABASE_URL no se guarda el log de consultas
	DatabaseURL string

	LogLevel  string
	LogFormat string // text | json

	QueryLogRetentionDays int // sólo lo usa el janitor
}

const (
	defaultGuildID   = "1275838792896348190"
	defaultPort      = "3000"
	defaultAPIURL    = "https://api.football-data.org/v4"
	defaultTimeout   = 10 * time.Second
	defaultTimezone  = "Europe/Madrid"
	defaultRetention = 30
)

// Load lee el entorno y corta el proceso si falta algo obligatorio.
func Load() Config {
	cfg, err := Parse(os.Getenv)
	if err != nil {
		log.Fatal("config", "err", err)
	}
	return cfg
}

// Parse es Load sin efectos: recibe de dónde leer las variables.
func Parse(getenv func(string) string) (Config, error) {
	var missing []string
	get := func(k string, req bool) string {
		v := strings.TrimSpace(getenv(k))
		if v == "" && req {
			missing = append(missing, k)
		}
		return v
	}
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	cfg := Config{
		DiscordToken:   get("DISCORD_TOKEN", true),
		DiscordGuild:   or(get("DISCORD_GUILD_ID", false), defaultGuildID),
		FootballAPIKey: get("FOOTBALL_API_KEY", true),
		FootballAPIURL: or(get("FOOTBALL_API_URL", false), defaultAPIURL),
		Port:           or(get("PORT", false), defaultPort),
		Timezone:       or(get("TIMEZONE", false), defaultTimezone),
		DatabaseURL:    get("DATABASE_URL", false),
		LogLevel:       or(get("LOG_LEVEL", false), "info"),
		LogFormat:      or(get("LOG_FORMAT", false), "text"),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("faltante env %s", strings.Join(missing, ", "))
	}

	cfg.FootballAPITimeout = defaultTimeout
	if raw := get("FOOTBALL_API_TIMEOUT", false); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("FOOTBALL_API_TIMEOUT inválido: %q", raw)
		}
		cfg.FootballAPITimeout = d
	}

	days, err := parseRetention(get("QUERY_LOG_RETENTION_DAYS", false))
	if err != nil {
		return Config{}, err
	}
	cfg.QueryLogRetentionDays = days

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, fmt.Errorf("TIMEZONE inválido %q: %w", cfg.Timezone, err)
	}
	return cfg, nil
}

// JanitorConfig es lo único que necesita la lambda de limpieza.
type JanitorConfig struct {
	DatabaseURL   string
	RetentionDays int
}

func ParseJanitor(getenv func(string) string) (JanitorConfig, error) {
	days, err := parseRetention(strings.TrimSpace(getenv("QUERY_LOG_RETENTION_DAYS")))
	if err != nil {
		return JanitorConfig{}, err
	}
	return JanitorConfig{
		DatabaseURL:   strings.TrimSpace(getenv("DATABASE_URL")),
		RetentionDays: days,
	}, nil
}

func parseRetention(raw string) (int, error) {
	if raw == "" {
		return defaultRetention, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("QUERY_LOG_RETENTION_DAYS inválido: %q", raw)
	}
	return n, nil
}

// HTTPAddr es la dirección del server de health/metrics.
func (c Config) HTTPAddr() string { return ":" + c.Port }

// Location ya fue validada en Parse.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SetupLogger aplica nivel y formato al logger global.
func (c Config) SetupLogger() {
	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(log.JSONFormatter)
	}
	if lvl, err := log.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Warn("LOG_LEVEL inválido, uso info", "value", c.LogLevel)
	}
}
