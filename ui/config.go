package ui

// Config contains TUI-specific configuration.
type Config struct {
	// Voice is a preferred voice name, fuzzy-matched against the inventory.
	Voice string

	// Rate is the speech rate multiplier; zero means the announcer default.
	Rate float64

	// Engine selects the speech engine ("espeak" or "mock").
	Engine string

	// For debugging: routes logs to a file instead of discarding them.
	Debug bool `env:"BANGLAGHORI_DEBUG"`
}
