// Package dynamo persists shape collections in a single DynamoDB table,
// mirroring the file store's contract: one collection per kind, Save
// replaces the whole collection, Load reconstructs it through the
// factory.
//
// # Table Layout
//
// Items are keyed pk = "<Kind>#<shard>", sk = zero-padded id, with the
// shape's attributes stored as number attributes alongside. The
// zero-padded sort key keeps items within a shard in ascending id order.
//
// # Sharding
//
// Use [DefaultConfig] for small collections (NumShards=1, single
// queries). Increase NumShards to spread a hot collection's writes
// across partitions:
//
//	cfg := dynamo.DefaultConfig()
//	cfg.NumShards = 16
//
// Loads fan out across all shards in parallel and merge.
//
// # Best-Effort Contract
//
// The file store's lenient conditions carry over: Save excludes
// wrong-kind shapes silently, Load on a missing table returns an empty
// collection, and items without a well-formed numeric attribute set are
// skipped rather than failing the load.
package dynamo
