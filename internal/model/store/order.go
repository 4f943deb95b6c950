package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderStatus is the order lifecycle state
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks whether the status is one of the known values
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusPending || s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderItem is a full product snapshot taken at order time plus a quantity.
// Later product edits never change historical orders.
type OrderItem struct {
	Product  `bson:",inline"`
	Quantity int64 `bson:"quantity" json:"quantity"`
}

// Order is a customer purchase request
type Order struct {
	ID               string      `bson:"id" json:"id"` // ORD-<unix-ms>
	UserID           string      `bson:"user_id" json:"user_id"`
	CustomerName     string      `bson:"customer_name" json:"customerName"`
	CustomerWhatsApp string      `bson:"customer_whatsapp" json:"customerWhatsApp"`
	Items            []OrderItem `bson:"items" json:"items"`
	Total            float64     `bson:"total" json:"total"` // computed server-side from the snapshots
	Status           OrderStatus `bson:"status" json:"status"`
	Notes            string      `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time   `bson:"created_at" json:"created_at"`
}

// ComputeTotal sums price*quantity over the line items
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Collection returns the collection name
func (o *Order) Collection() string { return "orders" }

// EnsureIndexes creates and maintains indexes
func (o *Order) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(o.Collection())
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_user_created"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_status_created"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}
