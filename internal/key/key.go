// Package key provides partition and sort key generation for the shapes table.
package key

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// CollectionPK computes the partition key a shape item lands in.
// With numShards=1, every item of a kind shares shard "00".
// With numShards>1, items are distributed across shards based on their
// sort key hash.
func CollectionPK(kind, sk string, numShards int) string {
	if numShards <= 1 {
		return fmt.Sprintf("%s#00", kind)
	}
	h := fnv.New32a()
	h.Write([]byte(sk))
	shard := h.Sum32() % uint32(numShards)
	return fmt.Sprintf("%s#%02x", kind, shard)
}

// ShardPK returns the partition key for one shard of a kind's collection.
// Used when fanning a load out across all shards.
func ShardPK(kind string, shard int) string {
	return fmt.Sprintf("%s#%02x", kind, shard)
}

// ItemSK returns the zero-padded sort key for a shape id. Padding keeps
// items within a shard in ascending id order.
func ItemSK(id int) string {
	return fmt.Sprintf("%012d", id)
}

// KindOfPK extracts the kind name from a partition key, or "" when the
// key does not carry the kind#shard form.
func KindOfPK(pk string) string {
	i := strings.LastIndex(pk, "#")
	if i <= 0 {
		return ""
	}
	return pk[:i]
}
