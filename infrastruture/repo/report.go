package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/cleaner-api/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// ReportRepo handles the persistence of execution reports in MongoDB.
// Identifiers are sequential integers drawn from a counter document.
type ReportRepo struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewReportRepo creates a new ReportRepo with the given MongoDB client, database name, and collection name.
func NewReportRepo(client *mongo.Client, dbName, collectionName string) *ReportRepo {
	db := client.Database(dbName)
	return &ReportRepo{
		collection: db.Collection(collectionName),
		counters:   db.Collection(countersCollection),
	}
}

// Save inserts the report under a newly allocated identifier.
func (r *ReportRepo) Save(ctx context.Context, report *domain.Report) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return 0, err
	}

	report.ID = id
	if _, err := r.collection.InsertOne(ctx, report); err != nil {
		return 0, fmt.Errorf("inserting report %d: %w", id, err)
	}

	return id, nil
}

// ByID retrieves a report by its identifier.
// Returns (nil, nil) if no report has that identifier.
func (r *ReportRepo) ByID(ctx context.Context, id int) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var report domain.Report
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding report %d: %w", id, err)
	}
	return &report, nil
}

// nextID atomically increments the collection's counter and returns the new value.
func (r *ReportRepo) nextID(ctx context.Context) (int, error) {
	filter := bson.M{"_id": r.collection.Name()}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := r.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("allocating report id: %w", err)
	}
	return counter.Seq, nil
}
