package slp

const (
	Version   = "v0.1.0"
	DBVersion = 1

	DefaultMaxPasses = 5
)
