package watch

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Watch topics
const (
	TopicProducts   = "products"
	TopicCategories = "categories"
	TopicBanners    = "banners"
	TopicOrders     = "orders"
	TopicUsers      = "users"
	TopicSettings   = "settings"
)

// reopenDelay waits before reopening a dropped change stream
const reopenDelay = 2 * time.Second

// Watcher follows change streams for the storefront collections and
// broadcasts fresh snapshots through the hub.
type Watcher struct {
	db  *mongo.Database
	hub *Hub
}

// NewWatcher creates the watcher
func NewWatcher(db *mongo.Database, hub *Hub) *Watcher {
	return &Watcher{db: db, hub: hub}
}

// Run starts one watch goroutine per topic and blocks until ctx ends.
// Change streams need a replica set; when they are unavailable the
// watcher logs once per topic and live updates are simply off.
func (w *Watcher) Run(ctx context.Context, topics map[string]Querier) {
	for topic, querier := range topics {
		go w.watchTopic(ctx, topic, querier)
	}
	<-ctx.Done()
}

func (w *Watcher) watchTopic(ctx context.Context, topic string, querier Querier) {
	collection := collectionForTopic(topic)

	for {
		if err := w.streamOnce(ctx, topic, collection, querier); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn().Err(err).Str("topic", topic).Msg("change stream closed, reopening")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reopenDelay):
		}
	}
}

func (w *Watcher) streamOnce(ctx context.Context, topic, collection string, querier Querier) error {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := w.db.Collection(collection).Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return err
	}
	defer stream.Close(ctx)

	// push the current state to whoever is already connected
	w.refresh(ctx, topic, querier)

	for stream.Next(ctx) {
		// the event itself is discarded, the snapshot query is the truth
		var raw bson.M
		if err := stream.Decode(&raw); err != nil {
			log.Warn().Err(err).Str("topic", topic).Msg("failed to decode change event")
			continue
		}
		w.refresh(ctx, topic, querier)
	}
	return stream.Err()
}

func (w *Watcher) refresh(ctx context.Context, topic string, querier Querier) {
	if w.hub.Subscribers(topic) == 0 {
		return
	}

	queryCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	data, err := querier(queryCtx)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("snapshot query failed")
		return
	}
	w.hub.Broadcast(topic, data)
}

func collectionForTopic(topic string) string {
	if topic == TopicSettings {
		return "settings"
	}
	return topic
}
