package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/partidos-bot/internal/adapters/discord"
	"github.com/jose-valero/partidos-bot/internal/adapters/footballdata"
	"github.com/jose-valero/partidos-bot/internal/adapters/httpstatus"
	"github.com/jose-valero/partidos-bot/internal/app/service"
	"github.com/jose-valero/partidos-bot/internal/infra/config"
	"github.com/jose-valero/partidos-bot/internal/infra/storage"
	"github.com/jose-valero/partidos-bot/internal/metrics"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	cfg.SetupLogger()

	m := metrics.NewService()

	// DB (opcional)
	var history service.QueryRecorder = service.NopRecorder{}
	if cfg.DatabaseURL != "" {
		db := openDB(cfg.DatabaseURL)
		defer db.Close()
		history = storage.NewQueryLogRepo(db)
	} else {
		log.Info("sin DATABASE_URL, log de consultas deshabilitado")
	}

	// football-data
	fd := footballdata.New(cfg.FootballAPIKey,
		footballdata.WithBaseURL(cfg.FootballAPIURL),
		footballdata.WithHTTPClient(&http.Client{Timeout: cfg.FootballAPITimeout}),
	)
	matchSvc := service.NewMatchService(fd, history, m, cfg.Location())

	// Discord session
	auth := strings.TrimSpace(cfg.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal("discord session", "err", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		log.Fatal("discord open", "err", err)
	}
	defer s.Close()
	log.Info("✅ Conectado", "user", s.State.User.Username, "id", s.State.User.ID)

	// health + metrics
	web := httpstatus.New(metrics.NewMetricsHandler())
	go func() {
		if err := web.Start(cfg.HTTPAddr()); err != nil && err != http.ErrServerClosed {
			log.Error("http server", "err", err)
		}
	}()

	// Router; el deadline por comando queda apenas por encima del timeout HTTP
	r := discordrouter.NewRouter(s, cfg.DiscordGuild, matchSvc, m, cfg.FootballAPITimeout+2*time.Second)
	if err := r.Register(); err != nil {
		log.Fatal("registrando comandos", "err", err)
	}
	r.Handlers()
	log.Info("✅ comandos registrados", "guild", cfg.DiscordGuild)

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
	log.Info("apagando")
}

func openDB(url string) *sql.DB {
	db, err := storage.Open(context.Background(), url)
	if err != nil {
		log.Fatal("db", "err", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate", "err", err)
	}
	log.Info("✅ DB lista y migrada")
	return db
}
