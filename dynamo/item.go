package dynamo

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/planar/internal/key"
	"github.com/jacentio/planar/shape"
)

// toItem converts a dictionary view into a table item, adding the pk/sk
// key attributes on top of the marshaled attribute map.
func toItem(kind shape.Kind, view shape.AttrMap, numShards int) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(view)
	if err != nil {
		return nil, fmt.Errorf("marshal view: %w", err)
	}
	sk := key.ItemSK(view["id"])
	item["pk"] = &types.AttributeValueMemberS{Value: key.CollectionPK(string(kind), sk, numShards)}
	item["sk"] = &types.AttributeValueMemberS{Value: sk}
	return item, nil
}

// fromItem converts a table item back into a dictionary view. ok is
// false for items without a well-formed numeric attribute set; such
// items are skipped on load, mirroring the flat codec's row leniency.
func fromItem(raw map[string]types.AttributeValue) (shape.AttrMap, bool) {
	view := make(shape.AttrMap, len(raw))
	for k, v := range raw {
		if k == "pk" || k == "sk" {
			continue
		}
		n, ok := v.(*types.AttributeValueMemberN)
		if !ok {
			return nil, false
		}
		i, err := strconv.Atoi(n.Value)
		if err != nil {
			return nil, false
		}
		view[k] = i
	}
	if _, ok := view["id"]; !ok {
		return nil, false
	}
	return view, true
}
