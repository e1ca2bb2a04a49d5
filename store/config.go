package store

// Config holds configuration for the file Store.
type Config struct {
	// Dir is the directory collection files are written to.
	// Default: "." (the working directory, matching collections written
	// by earlier tooling).
	Dir string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Dir: ".",
	}
}

// validate ensures config values are usable.
func (c *Config) validate() {
	if c.Dir == "" {
		c.Dir = "."
	}
}
