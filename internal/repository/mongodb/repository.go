package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/gildedrose/internal/domain/models"
	"github.com/mamadbah2/gildedrose/internal/repository"
)

const (
	itemsCollection     = "items"
	snapshotsCollection = "snapshots"
)

// itemDocument adds an insertion sequence so items come back in the order they were stocked.
type itemDocument struct {
	models.Item `bson:",inline"`
	Seq         int64 `bson:"seq"`
}

// MongoDBRepository implements repository.Repository for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ repository.Repository = (*MongoDBRepository)(nil)

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// ListItems returns every stocked item ordered by insertion.
func (r *MongoDBRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.db.Collection(itemsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	items := make([]models.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.Item)
	}
	return items, nil
}

// GetItem loads one item by id.
func (r *MongoDBRepository) GetItem(ctx context.Context, id string) (models.Item, error) {
	var doc itemDocument
	err := r.db.Collection(itemsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Item{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to find item %s: %w", id, err)
	}
	return doc.Item, nil
}

// AddItems inserts new items after the existing ones.
func (r *MongoDBRepository) AddItems(ctx context.Context, items ...models.Item) error {
	if len(items) == 0 {
		return nil
	}

	base := time.Now().UnixNano()
	docs := make([]interface{}, 0, len(items))
	for i, item := range items {
		docs = append(docs, itemDocument{Item: item, Seq: base + int64(i)})
	}

	if _, err := r.db.Collection(itemsCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert items: %w", err)
	}
	return nil
}

// SaveItems writes the aged sellIn and quality of every item in one bulk round trip.
func (r *MongoDBRepository) SaveItems(ctx context.Context, items []models.Item) error {
	if len(items) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(items))
	for _, item := range items {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": item.ID}).
			SetUpdate(bson.M{"$set": bson.M{"sell_in": item.SellIn, "quality": item.Quality}}))
	}

	opts := options.BulkWrite().SetOrdered(false)
	if _, err := r.db.Collection(itemsCollection).BulkWrite(ctx, writes, opts); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// SaveSnapshot stores the state of the inventory after a day.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	if _, err := r.db.Collection(snapshotsCollection).InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the snapshot with the highest day, or nil.
func (r *MongoDBRepository) LatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "day", Value: -1}})

	var snapshot models.Snapshot
	err := r.db.Collection(snapshotsCollection).FindOne(ctx, bson.D{}, opts).Decode(&snapshot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest snapshot: %w", err)
	}
	return &snapshot, nil
}

// Drop removes both collections. Used to reset the inventory.
func (r *MongoDBRepository) Drop(ctx context.Context) error {
	for _, name := range []string{itemsCollection, snapshotsCollection} {
		if err := r.db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop %s: %w", name, err)
		}
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
