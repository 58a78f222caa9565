package httpstatus

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// OnlineText es lo que responde GET / para los pings de liveness.
const OnlineText = "Bot en línea"

type Server struct {
	router  *mux.Router
	metrics http.Handler
}

// New arma el router; metrics puede ser nil si no se quiere exponer /metrics.
func New(metrics http.Handler) *Server {
	s := &Server{router: mux.NewRouter(), metrics: metrics}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet, http.MethodHead)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics).Methods(http.MethodGet)
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	log.Debug("health ping", "remote", r.RemoteAddr)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, OnlineText)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start bloquea; se llama en su propia goroutine.
func (s *Server) Start(addr string) error {
	log.Info("Servidor escuchando", "addr", addr)
	return http.ListenAndServe(addr, s)
}
