package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Banner is a carousel entry; URL may point at an image or a video.
type Banner struct {
	ID        string    `bson:"id" json:"id"`
	URL       string    `bson:"url" json:"url"`
	Link      string    `bson:"link,omitempty" json:"link,omitempty"` // optional redirect on click
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Collection returns the collection name
func (b *Banner) Collection() string { return "banners" }

// EnsureIndexes creates and maintains indexes
func (b *Banner) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(b.Collection())
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_created"),
	}
	_, err := coll.Indexes().CreateOne(ctx, index)
	return err
}
