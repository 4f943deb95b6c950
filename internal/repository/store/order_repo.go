package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gother/internal/model/store"
)

// OrderRepo is the order store.
type OrderRepo struct {
	collection *mongo.Collection
}

// NewOrderRepo creates the order repository
func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{
		collection: db.Collection("orders"),
	}
}

// Create inserts an order
func (r *OrderRepo) Create(ctx context.Context, order *store.Order) error {
	order.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByID loads an order by its public ID
func (r *OrderRepo) FindByID(ctx context.Context, id string) (*store.Order, error) {
	var order store.Order
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders matching the filter, newest first
func (r *OrderRepo) List(ctx context.Context, filter bson.M) ([]*store.Order, error) {
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*store.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status store.OrderStatus) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}

// Delete removes an order
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}

// CountSince counts orders created at or after the cutoff; zero cutoff counts all
func (r *OrderRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	filter := bson.M{}
	if !since.IsZero() {
		filter["created_at"] = bson.M{"$gte": since}
	}
	return r.collection.CountDocuments(ctx, filter)
}
