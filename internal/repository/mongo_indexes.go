package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	contactsCollection = "contacts"
	blogCollection     = "blog_posts"
)

func ensureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(contactsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create %s indexes: %w", contactsCollection, err)
	}

	_, err = db.Collection(blogCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "publishedAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "publishedAt", Value: -1}}},
		{
			// Only seed posts carry seedKey; user-created posts are left out of the index.
			Keys: bson.D{{Key: "seedKey", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"seedKey": bson.M{"$exists": true}}),
		},
	})
	if err != nil {
		return fmt.Errorf("create %s indexes: %w", blogCollection, err)
	}
	return nil
}
