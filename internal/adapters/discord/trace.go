package discord

import (
	"time"

	"github.com/charmbracelet/log"
)

func step(label string) func() {
	start := time.Now()
	return func() { log.Debug("trace", "step", label, "dur", time.Since(start)) }
}
