package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gother/internal/model/store"
)

// BannerRepo is the promotional banner store.
type BannerRepo struct {
	collection *mongo.Collection
}

// NewBannerRepo creates the banner repository
func NewBannerRepo(db *mongo.Database) *BannerRepo {
	return &BannerRepo{
		collection: db.Collection("banners"),
	}
}

// Create inserts a banner
func (r *BannerRepo) Create(ctx context.Context, banner *store.Banner) error {
	banner.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, banner)
	return err
}

// List returns banners, newest first
func (r *BannerRepo) List(ctx context.Context) ([]*store.Banner, error) {
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var banners []*store.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// Delete removes a banner
func (r *BannerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}
