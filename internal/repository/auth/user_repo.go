package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gother/internal/model/auth"
)

// UserRepo is the profile store. IDs are UUID strings.
type UserRepo struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewUserRepo creates the user repository
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{
		collection: db.Collection("users"),
		counters:   db.Collection("counters"),
	}
}

// Create inserts a profile
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// FindByID loads a profile by account handle
func (r *UserRepo) FindByID(ctx context.Context, id string) (*auth.User, error) {
	var user auth.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail loads a profile by (lowercased) email
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	var user auth.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindBySerialID loads a profile by its human-facing serial ID
func (r *UserRepo) FindBySerialID(ctx context.Context, serialID int64) (*auth.User, error) {
	var user auth.User
	err := r.collection.FindOne(ctx, bson.M{"serial_id": serialID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MaxSerialID returns the highest assigned serial ID, 0 when none exist
func (r *UserRepo) MaxSerialID(ctx context.Context) (int64, error) {
	opts := options.FindOne().
		SetSort(bson.D{bson.E{Key: "serial_id", Value: -1}})

	var user auth.User
	err := r.collection.FindOne(ctx, bson.M{"serial_id": bson.M{"$gt": 0}}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}
	return user.SerialID, nil
}

// NextSerialID atomically increments and returns the serial counter.
// floor seeds the counter on first use (and re-seeds it if it ever lags
// behind an already-assigned serial), so the first issued value is
// floor+1.
func (r *UserRepo) NextSerialID(ctx context.Context, floor int64) (int64, error) {
	filter := bson.M{"_id": "user_serial"}
	update := bson.A{
		bson.M{"$set": bson.M{
			"value": bson.M{"$add": bson.A{
				bson.M{"$max": bson.A{bson.M{"$ifNull": bson.A{"$value", floor}}, floor}},
				1,
			}},
		}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// Update applies a partial update, stamping updated_at
func (r *UserRepo) Update(ctx context.Context, id string, update bson.M) error {
	if setDoc, ok := update["$set"].(bson.M); ok {
		setDoc["updated_at"] = time.Now()
	} else {
		update["$set"] = bson.M{"updated_at": time.Now()}
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// UpdateLastLoginAt stamps the last successful credential exchange
func (r *UserRepo) UpdateLastLoginAt(ctx context.Context, id string) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"last_login_at": now,
			"updated_at":    now,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Delete removes a profile permanently. Hard delete, no tombstone.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// List returns profiles with pagination, newest first
func (r *UserRepo) List(ctx context.Context, filter bson.M, page, pageSize int64) ([]*auth.User, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "serial_id", Value: 1}}).
		SetLimit(pageSize).
		SetSkip((page - 1) * pageSize)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []*auth.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListAll returns every profile, used by the roster-wide sync and wipe loops
func (r *UserRepo) ListAll(ctx context.Context) ([]*auth.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*auth.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRole returns profiles holding the given role
func (r *UserRepo) ListByRole(ctx context.Context, role auth.UserRole) ([]*auth.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*auth.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count counts profiles matching the filter
func (r *UserRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}
