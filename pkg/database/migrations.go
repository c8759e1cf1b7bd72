package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up() error {
	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version > currentVersion {
			log.Printf("Running migration %d: %s", migration.Version, migration.Description)

			if err := migration.Up(m.db); err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			if err := m.updateVersion(migration.Version); err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}
		}
	}

	return nil
}

func (m *Migrator) getCurrentVersion() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection("migrations").FindOne(
		ctx,
		bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}),
	).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(version int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := m.db.Collection("migrations").InsertOne(ctx, bson.M{
		"version":    version,
		"applied_at": time.Now(),
	})
	return err
}

// getMigrations returns the ordered migration list. The unique indexes here
// are the storage-level safety net against duplicate-rating and
// duplicate-bookmark races.
func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create unique rating indexes",
			Up: func(db *mongo.Database) error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				_, err := db.Collection("ratings").Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys: bson.D{
						{Key: "room_id", Value: 1},
						{Key: "user_id", Value: 1},
					},
					Options: options.Index().SetUnique(true),
				})
				if err != nil {
					return err
				}

				_, err = db.Collection("driver_ratings").Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys: bson.D{
						{Key: "driver_id", Value: 1},
						{Key: "user_id", Value: 1},
					},
					Options: options.Index().SetUnique(true),
				})
				return err
			},
		},
		{
			Version:     2,
			Description: "Create unique driver identity indexes",
			Up: func(db *mongo.Database) error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				_, err := db.Collection("drivers").Indexes().CreateMany(ctx, []mongo.IndexModel{
					{
						Keys:    bson.D{{Key: "email", Value: 1}},
						Options: options.Index().SetUnique(true),
					},
					{
						Keys:    bson.D{{Key: "car_details.license_plate", Value: 1}},
						Options: options.Index().SetUnique(true),
					},
				})
				return err
			},
		},
		{
			Version:     3,
			Description: "Create unique feedback and saved room indexes",
			Up: func(db *mongo.Database) error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				_, err := db.Collection("feedback").Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys:    bson.D{{Key: "user_id", Value: 1}},
					Options: options.Index().SetUnique(true),
				})
				if err != nil {
					return err
				}

				_, err = db.Collection("saved_rooms").Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys: bson.D{
						{Key: "user_id", Value: 1},
						{Key: "room_id", Value: 1},
					},
					Options: options.Index().SetUnique(true),
				})
				return err
			},
		},
		{
			Version:     4,
			Description: "Create ride matching indexes",
			Up: func(db *mongo.Database) error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				_, err := db.Collection("rides").Indexes().CreateMany(ctx, []mongo.IndexModel{
					{Keys: bson.D{{Key: "status", Value: 1}, {Key: "scheduled_time", Value: 1}}},
					{Keys: bson.D{{Key: "student_id", Value: 1}}},
					{Keys: bson.D{{Key: "driver_id", Value: 1}}},
				})
				return err
			},
		},
	}
}
