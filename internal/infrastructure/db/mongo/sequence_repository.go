package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cargobook/booking-system/internal/core/domain"
)

const collectionCounters = "counters"

// SequenceRepository implements ports.SequenceStore over a counters
// collection with one document per series: {_id: <series>, value: <int64>}.
type SequenceRepository struct {
	col  *mongo.Collection
	base int64
}

// NewSequenceRepository creates a SequenceRepository. base is the first value
// of a fresh series minus one; it also acts as the floor for legacy values.
func NewSequenceRepository(db *mongo.Database, base int64) *SequenceRepository {
	return &SequenceRepository{col: db.Collection(collectionCounters), base: base}
}

// Next issues the next value for the series. The whole read-modify-write is a
// single FindOneAndUpdate with an aggregation-pipeline update, so it executes
// as one atomic document mutation server-side: concurrent callers serialize on
// the document and never observe the same value.
//
// The pipeline also absorbs bad stored state: a missing document (upsert), a
// non-numeric legacy value ($convert onError) and a value below the base
// ($max) all collapse to the base before the increment, so Next never fails
// on malformed history.
func (r *SequenceRepository) Next(ctx context.Context, series string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"value": bson.M{"$add": bson.A{
				bson.M{"$max": bson.A{
					bson.M{"$convert": bson.M{
						"input":   "$value",
						"to":      "long",
						"onError": r.base,
						"onNull":  r.base,
					}},
					r.base,
				}},
				1,
			}},
		}}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Value int64 `bson:"value"`
	}
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": series}, update, opts).Decode(&doc); err != nil {
		return 0, fmt.Errorf("%w: sequence %s: %v", domain.ErrStorageUnavailable, series, err)
	}
	return doc.Value, nil
}
