package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Format is a deliverable animation file format
type Format string

const (
	FormatSVGA Format = "SVGA"
	FormatVAP  Format = "VAP"
	FormatMP4  Format = "MP4"
	FormatJSON Format = "JSON"
	FormatPAG  Format = "PAG"
)

// IsValid checks whether the format is one of the deliverable kinds
func (f Format) IsValid() bool {
	switch f {
	case FormatSVGA, FormatVAP, FormatMP4, FormatJSON, FormatPAG:
		return true
	}
	return false
}

// Level is the product pricing tier
type Level string

const (
	LevelClassic Level = "Classic"
	LevelPremium Level = "Premium"
	LevelLuxury  Level = "Luxury"
	LevelElite   Level = "Elite"
)

// Product is a digital animated-gift asset.
// Name fields are bilingual; the client picks the one matching its locale.
type Product struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	NameAr     string `bson:"name_ar" json:"nameAr"`
	Category   string `bson:"category" json:"category"`
	CategoryAr string `bson:"category_ar,omitempty" json:"categoryAr,omitempty"`

	Price      float64  `bson:"price" json:"price"`
	PreviewURL string   `bson:"preview_url" json:"previewUrl"`
	VideoURL   string   `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	Formats    []Format `bson:"formats,omitempty" json:"formats,omitempty"`
	Tags       []string `bson:"tags,omitempty" json:"tags,omitempty"`
	Level      Level    `bson:"level,omitempty" json:"level,omitempty"`
	Brand      string   `bson:"brand,omitempty" json:"brand,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Collection returns the collection name
func (p *Product) Collection() string { return "products" }

// EnsureIndexes creates and maintains indexes
func (p *Product) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(p.Collection())
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_category_created"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}
