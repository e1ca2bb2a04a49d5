package dynamo

// Config holds configuration for the DynamoDB Store.
type Config struct {
	// Table is the name of the shapes table.
	// Default: "planar_shapes"
	Table string

	// NumShards is the number of partition-key shards per collection.
	// Higher values spread writes across partitions but require more
	// parallel queries on load.
	// Default: 1 (no sharding, single query)
	// Max: 256
	NumShards int
}

// DefaultConfig returns sensible defaults for small collections.
func DefaultConfig() Config {
	return Config{
		Table:     "planar_shapes",
		NumShards: 1,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.Table == "" {
		c.Table = "planar_shapes"
	}
	if c.NumShards < 1 {
		c.NumShards = 1
	}
	if c.NumShards > 256 {
		c.NumShards = 256
	}
}
