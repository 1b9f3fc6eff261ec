package repository

import (
	"context"
	"fmt"

	"github.com/skolyn/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// contactDocument is the stored shape of a contact submission.
type contactDocument struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"`
	model.ContactSubmission `bson:",inline"`
}

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	coll *mongo.Collection
}

// NewMongoContactRepository creates a MongoContactRepository on db's contacts collection.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(contactsCollection)}
}

var _ ContactRepository = (*MongoContactRepository)(nil)

// Save inserts one document and sets c.ID to the hex form of the generated ObjectID.
func (r *MongoContactRepository) Save(ctx context.Context, c *model.ContactSubmission) error {
	res, err := r.coll.InsertOne(ctx, contactDocument{ContactSubmission: *c})
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert contact: unexpected id type %T", res.InsertedID)
	}
	c.ID = oid.Hex()
	return nil
}

// List returns submissions filtered by status, newest first, capped at opts.Limit.
func (r *MongoContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find contacts: %w", err)
	}
	var docs []contactDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}

	contacts := make([]*model.ContactSubmission, 0, len(docs))
	for i := range docs {
		c := docs[i].ContactSubmission
		c.ID = docs[i].ID.Hex()
		contacts = append(contacts, &c)
	}
	return contacts, nil
}
