package storage

// QueryLog es una fila de auditoría de /partidos. No guarda partidos, sólo la consulta.
type QueryLog struct {
	GuildID     string
	UserID      string
	TeamInput   string
	TeamID      *int   // nil si el equipo no se reconoció
	Competition string // código ya resuelto, vacío si no hubo filtro
	Outcome     string // ok | empty | unknown_team | upstream_error
	Results     int
}
