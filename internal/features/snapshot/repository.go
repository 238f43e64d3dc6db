package snapshot

import (
	"context"

	"go-marketplace/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SnapshotRepository interface {
	Enabled() bool
	Create(ctx context.Context, snap CatalogSnapshot) error
	Latest(ctx context.Context) (*CatalogSnapshot, error)
}

type SnapshotRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSnapshotRepository(mongodb *database.MongodbDB) SnapshotRepository {
	if !mongodb.Enabled() {
		return &SnapshotRepositoryImpl{}
	}
	return &SnapshotRepositoryImpl{
		Collection: mongodb.DB.Collection("catalog_snapshots"),
	}
}

func (r *SnapshotRepositoryImpl) Enabled() bool {
	return r.Collection != nil
}

func (r *SnapshotRepositoryImpl) Create(ctx context.Context, snap CatalogSnapshot) error {
	_, err := r.Collection.InsertOne(ctx, snap)
	return err
}

func (r *SnapshotRepositoryImpl) Latest(ctx context.Context) (*CatalogSnapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "taken_at", Value: -1}})
	var snap CatalogSnapshot
	if err := r.Collection.FindOne(ctx, bson.M{}, opts).Decode(&snap); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}
