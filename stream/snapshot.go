// Package stream provides DynamoDB Streams handlers that mirror shape
// collections to flat-file snapshots.
package stream

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/jacentio/planar/internal/key"
	"github.com/jacentio/planar/shape"
	"github.com/jacentio/planar/store"
)

// Source is the collection store snapshots are read from.
type Source interface {
	Load(ctx context.Context, kind shape.Kind) ([]shape.Shape, error)
}

// Handler processes DynamoDB stream events and refreshes file snapshots
// for the collections that changed.
type Handler struct {
	source Source
	sink   *store.Store
	logger *slog.Logger
}

// NewHandler creates a new stream handler writing snapshots through sink.
func NewHandler(source Source, sink *store.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		source: source,
		sink:   sink,
		logger: logger,
	}
}

// HandleSnapshot refreshes the snapshot of every kind touched by the
// event. This function is designed to be used as an AWS Lambda handler.
func (h *Handler) HandleSnapshot(ctx context.Context, event events.DynamoDBEvent) error {
	runID := uuid.New().String()[:8]

	kinds := map[shape.Kind]struct{}{}
	for _, record := range event.Records {
		kind, ok := kindOfRecord(record)
		if !ok {
			continue
		}
		kinds[kind] = struct{}{}
		h.logger.Debug("collection changed",
			"run", runID,
			"kind", kind,
			"event", record.EventName,
			"id", getNumberAttr(record.Change.NewImage, "id"),
		)
	}
	if len(kinds) == 0 {
		return nil
	}

	for kind := range kinds {
		shapes, err := h.source.Load(ctx, kind)
		if err != nil {
			h.logger.Error("failed to load collection",
				"run", runID,
				"kind", kind,
				"error", err,
			)
			return err // Will retry, eventually DLQ
		}
		if err := h.sink.Save(kind, shapes); err != nil {
			h.logger.Error("failed to write snapshot",
				"run", runID,
				"kind", kind,
				"error", err,
			)
			return err
		}
		h.logger.Info("snapshot refreshed",
			"run", runID,
			"kind", kind,
			"count", len(shapes),
		)
	}
	return nil
}

// kindOfRecord extracts the registered kind a stream record belongs to,
// from the partition key of its keys image. Records with foreign or
// malformed keys are ignored.
func kindOfRecord(record events.DynamoDBEventRecord) (shape.Kind, bool) {
	pk := getStringAttr(record.Change.Keys, "pk")
	if pk == "" {
		return "", false
	}
	return shape.ParseKind(key.KindOfPK(pk))
}

// ConvertStreamView converts a DynamoDB stream image into a dictionary
// view. ok is false for images without a well-formed numeric attribute
// set. Use this when processing individual record images instead of
// reloading whole collections.
func ConvertStreamView(image map[string]events.DynamoDBAttributeValue) (shape.AttrMap, bool) {
	view := make(shape.AttrMap, len(image))
	for k, v := range image {
		if k == "pk" || k == "sk" {
			continue
		}
		if v.DataType() != events.DataTypeNumber {
			return nil, false
		}
		n, err := strconv.Atoi(v.Number())
		if err != nil {
			return nil, false
		}
		view[k] = n
	}
	if _, ok := view["id"]; !ok {
		return nil, false
	}
	return view, true
}

// getStringAttr extracts a string attribute from a DynamoDB stream image.
func getStringAttr(image map[string]events.DynamoDBAttributeValue, k string) string {
	if v, ok := image[k]; ok && v.DataType() == events.DataTypeString {
		return v.String()
	}
	return ""
}

// getNumberAttr extracts a number attribute from a DynamoDB stream image.
func getNumberAttr(image map[string]events.DynamoDBAttributeValue, k string) int64 {
	if v, ok := image[k]; ok {
		if v.DataType() == events.DataTypeNumber {
			n, _ := strconv.ParseInt(v.Number(), 10, 64)
			return n
		}
	}
	return 0
}
