package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/planar/internal/key"
	"github.com/jacentio/planar/shape"
)

// Store persists shape collections in a DynamoDB table.
type Store struct {
	client *dynamodb.Client
	config Config
	ids    *shape.Allocator
}

// New creates a new Store instance. Shapes reconstructed by Load draw
// placeholder ids from ids before their stored id is applied.
func New(client *dynamodb.Client, config Config, ids *shape.Allocator) *Store {
	config.validate()
	if ids == nil {
		ids = shape.NewAllocator()
	}
	return &Store{
		client: client,
		config: config,
		ids:    ids,
	}
}

// Save replaces the kind's collection with the given shapes: stale items
// are deleted and current ones written, the table analogue of the file
// store's unconditional overwrite. Nil elements and shapes of a
// different kind are silently excluded.
func (s *Store) Save(ctx context.Context, kind shape.Kind, shapes []shape.Shape) error {
	items := make([]map[string]types.AttributeValue, 0, len(shapes))
	kept := make(map[string]struct{}, len(shapes))
	for _, sh := range shapes {
		if sh == nil || sh.Kind() != kind {
			continue
		}
		item, err := toItem(kind, sh.AttributeMap(), s.config.NumShards)
		if err != nil {
			return err
		}
		sk := item["sk"].(*types.AttributeValueMemberS).Value
		kept[sk] = struct{}{}
		items = append(items, item)
	}

	// 1. Delete items no longer in the collection.
	existing, err := s.queryShards(ctx, kind, true)
	if err != nil {
		return err
	}
	for _, raw := range existing {
		pkAttr, okPK := raw["pk"].(*types.AttributeValueMemberS)
		skAttr, okSK := raw["sk"].(*types.AttributeValueMemberS)
		if !okPK || !okSK {
			continue
		}
		if _, ok := kept[skAttr.Value]; ok {
			continue
		}
		_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.config.Table),
			Key: map[string]types.AttributeValue{
				"pk": pkAttr,
				"sk": skAttr,
			},
		})
		if err != nil {
			return fmt.Errorf("delete stale item %s: %w", skAttr.Value, err)
		}
	}

	// 2. Write the current collection.
	for _, item := range items {
		_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.config.Table),
			Item:      item,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Load reconstructs the kind's collection, ordered by ascending id
// (DynamoDB cannot preserve insertion order across shards). A missing
// table yields an empty collection; items without a well-formed numeric
// attribute set are skipped.
func (s *Store) Load(ctx context.Context, kind shape.Kind) ([]shape.Shape, error) {
	raws, err := s.queryShards(ctx, kind, false)
	if err != nil {
		return nil, err
	}

	views := make([]shape.AttrMap, 0, len(raws))
	for _, raw := range raws {
		if view, ok := fromItem(raw); ok {
			views = append(views, view)
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i]["id"] < views[j]["id"]
	})

	shapes := make([]shape.Shape, 0, len(views))
	for _, view := range views {
		sh, err := shape.New(s.ids, kind, view)
		if err != nil {
			return nil, err
		}
		if sh == nil {
			continue
		}
		shapes = append(shapes, sh)
	}
	return shapes, nil
}

// queryShards collects a kind's items from every shard. With keysOnly
// set, only the pk/sk attributes are projected.
func (s *Store) queryShards(ctx context.Context, kind shape.Kind, keysOnly bool) ([]map[string]types.AttributeValue, error) {
	numShards := s.config.NumShards
	if numShards < 1 {
		numShards = 1
	}

	// Fast path for single shard (default)
	if numShards == 1 {
		return s.queryShard(ctx, key.ShardPK(string(kind), 0), keysOnly)
	}

	// Multi-shard fan-out
	var mu sync.Mutex
	var all []map[string]types.AttributeValue
	var wg sync.WaitGroup
	errs := make(chan error, numShards)

	for shardNum := 0; shardNum < numShards; shardNum++ {
		wg.Add(1)
		go func(shardNum int) {
			defer wg.Done()

			items, err := s.queryShard(ctx, key.ShardPK(string(kind), shardNum), keysOnly)
			if err != nil {
				errs <- fmt.Errorf("shard %02x: %w", shardNum, err)
				return
			}

			mu.Lock()
			all = append(all, items...)
			mu.Unlock()
		}(shardNum)
	}

	go func() {
		wg.Wait()
		close(errs)
	}()

	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return all, nil
}

// queryShard pages through one shard's items. A missing table is
// treated as an empty shard, the table analogue of a missing file.
func (s *Store) queryShard(ctx context.Context, pk string, keysOnly bool) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.config.Table),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	}
	if keysOnly {
		input.ProjectionExpression = aws.String("pk, sk")
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewQueryPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			var nfErr *types.ResourceNotFoundException
			if errors.As(err, &nfErr) {
				return nil, nil
			}
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}
