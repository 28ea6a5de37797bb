package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/shirshiz/studio-crm/internal/entity"
)

const leadsCollection = "leads"

// LeadRepository is the document-store adapter for the leads collection.
// Reads come back ordered by regDate descending, matching the collection
// subscription the UI was built around.
type LeadRepository struct {
	Coll *mongo.Collection
	Log  *zap.Logger
}

func NewLeadRepository(db *mongo.Database, log *zap.Logger) *LeadRepository {
	return &LeadRepository{Coll: db.Collection(leadsCollection), Log: log}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) (string, error) {
	lead.EnsureID()
	if _, err := r.Coll.InsertOne(ctx, lead); err != nil {
		return "", err
	}
	return lead.ID, nil
}

// Update is a whole-record replace; the consumer's save semantics carry no
// field-level patches.
func (r *LeadRepository) Update(ctx context.Context, id string, lead *entity.Lead) error {
	lead.ID = id
	_, err := r.Coll.ReplaceOne(ctx, bson.M{"_id": id}, lead)
	return err
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	cursor, err := r.Coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "regDate", Value: -1}}))
	if err != nil {
		return nil, err
	}

	leads := []entity.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// Subscribe opens a change stream on the collection and emits a fresh
// full-collection snapshot after every change, plus one immediately so the
// consumer starts populated. When the stream dies the channel closes and
// the consumer keeps its last (stale) snapshot rather than crashing.
func (r *LeadRepository) Subscribe(ctx context.Context) (<-chan []entity.Lead, error) {
	stream, err := r.Coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	initial, err := r.FindAll(ctx)
	if err != nil {
		stream.Close(ctx)
		return nil, err
	}

	out := make(chan []entity.Lead, 1)
	out <- initial

	push := func() {
		snap, err := r.FindAll(ctx)
		if err != nil {
			r.Log.Error("loading leads snapshot", zap.Error(err))
			return
		}
		// Keep only the latest snapshot when the consumer lags.
		select {
		case out <- snap:
		default:
			select {
			case <-out:
			default:
			}
			out <- snap
		}
	}

	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			push()
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			r.Log.Error("lead change stream closed", zap.Error(err))
		}
	}()

	return out, nil
}
