package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gother/internal/model/store"
)

// CategoryRepo is the catalog section store.
type CategoryRepo struct {
	collection *mongo.Collection
}

// NewCategoryRepo creates the category repository
func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{
		collection: db.Collection("categories"),
	}
}

// Create inserts a category
func (r *CategoryRepo) Create(ctx context.Context, category *store.Category) error {
	_, err := r.collection.InsertOne(ctx, category)
	return err
}

// FindByID loads a category by slug
func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*store.Category, error) {
	var category store.Category
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns every category
func (r *CategoryRepo) List(ctx context.Context) ([]*store.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*store.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Update replaces the display fields of a category
func (r *CategoryRepo) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	return err
}

// Delete removes a category
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}
