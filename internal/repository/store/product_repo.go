package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gother/internal/model/store"
)

// ProductRepo is the catalog item store.
type ProductRepo struct {
	collection *mongo.Collection
}

// NewProductRepo creates the product repository
func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{
		collection: db.Collection("products"),
	}
}

// Create inserts a product
func (r *ProductRepo) Create(ctx context.Context, product *store.Product) error {
	product.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindByID loads a product by its public ID
func (r *ProductRepo) FindByID(ctx context.Context, id string) (*store.Product, error) {
	var product store.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs loads products for a set of public IDs
func (r *ProductRepo) FindByIDs(ctx context.Context, ids []string) ([]*store.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*store.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// List returns products, optionally filtered by category, newest first
func (r *ProductRepo) List(ctx context.Context, category string) ([]*store.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*store.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Update replaces the mutable fields of a product
func (r *ProductRepo) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	return err
}

// Delete removes a product
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}

// Count counts all products
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
