// Package repository provides data access for the suppository base catalog.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseDensity is one named suppository base and its density in g/mL.
type BaseDensity struct {
	Name       string  `bson:"name" json:"name"`
	DensityGML float64 `bson:"density_g_ml" json:"density_g_ml"`
}

// BaseCatalogConfig represents a base catalog document. At most one
// document is active; updates deactivate the previous catalog and insert
// a new version, keeping history intact.
type BaseCatalogConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Bases     []BaseDensity          `bson:"bases" json:"bases"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Density returns the density of the named base, matching case-sensitively.
func (c *BaseCatalogConfig) Density(name string) (float64, bool) {
	for _, b := range c.Bases {
		if b.Name == name {
			return b.DensityGML, true
		}
	}
	return 0, false
}

// BasesRepository provides methods for base catalog operations.
type BasesRepository struct {
	collection *mongo.Collection
}

// NewBasesRepository creates a new base catalog repository.
func NewBasesRepository(db *MongoDB) *BasesRepository {
	return &BasesRepository{
		collection: db.Bases,
	}
}

// GetActive returns the active base catalog.
func (r *BasesRepository) GetActive(ctx context.Context) (*BaseCatalogConfig, error) {
	var config BaseCatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active catalog found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates any current catalog and inserts a new active one.
func (r *BasesRepository) Create(ctx context.Context, bases []BaseDensity, createdBy string) (*BaseCatalogConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := BaseCatalogConfig{
		ID:        primitive.NewObjectID(),
		Bases:     bases,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Update replaces the bases of an existing catalog, bumping its version.
func (r *BasesRepository) Update(ctx context.Context, id primitive.ObjectID, bases []BaseDensity, updatedBy string) (*BaseCatalogConfig, error) {
	var current BaseCatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"bases":      bases,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config BaseCatalogConfig
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns base catalog versions, newest first.
func (r *BasesRepository) List(ctx context.Context, limit int) ([]BaseCatalogConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []BaseCatalogConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
