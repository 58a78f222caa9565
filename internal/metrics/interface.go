package metrics

// Metrics is what the bot reports about commands and the upstream API.
type Metrics interface {
	IncCommand(outcome string)
	IncAutocomplete(option string)
	ObserveUpstream(seconds float64, failed bool)
}
