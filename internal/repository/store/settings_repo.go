package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gother/internal/model/store"
)

// SettingsRepo holds the storefront config singleton.
type SettingsRepo struct {
	collection *mongo.Collection
}

// NewSettingsRepo creates the settings repository
func NewSettingsRepo(db *mongo.Database) *SettingsRepo {
	return &SettingsRepo{
		collection: db.Collection("settings"),
	}
}

// Get loads the singleton settings document; mongo.ErrNoDocuments when unset
func (r *SettingsRepo) Get(ctx context.Context) (*store.Settings, error) {
	var settings store.Settings
	err := r.collection.FindOne(ctx, bson.M{"_id": store.SettingsDocID}).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert replaces the singleton settings document
func (r *SettingsRepo) Upsert(ctx context.Context, settings *store.Settings) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": store.SettingsDocID},
		bson.M{"$set": settings},
		opts)
	return err
}
