package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Category is a storefront section. ID is the slug of the English name.
type Category struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	NameAr string `bson:"name_ar" json:"nameAr"`
	Icon   string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Collection returns the collection name
func (c *Category) Collection() string { return "categories" }

// EnsureIndexes creates and maintains indexes
func (c *Category) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(c.Collection())
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetName("idx_id").SetUnique(true),
	}
	_, err := coll.Indexes().CreateOne(ctx, index)
	return err
}
