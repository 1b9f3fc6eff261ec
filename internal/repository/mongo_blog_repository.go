package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/skolyn/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type blogDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	model.BlogPost `bson:",inline"`
}

// MongoBlogRepository is the MongoDB implementation of BlogRepository.
type MongoBlogRepository struct {
	coll *mongo.Collection
}

// NewMongoBlogRepository creates a MongoBlogRepository on db's blog_posts collection.
func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{coll: db.Collection(blogCollection)}
}

var _ BlogRepository = (*MongoBlogRepository)(nil)

func (r *MongoBlogRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return n, nil
}

func (r *MongoBlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	res, err := r.coll.InsertOne(ctx, blogDocument{BlogPost: *post})
	if err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert blog post: unexpected id type %T", res.InsertedID)
	}
	post.ID = oid.Hex()
	return nil
}

// List applies the category filter and the title/excerpt/tags search, then
// sorts by publishedAt descending.
func (r *MongoBlogRepository) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	filter := blogFilter(opts)

	findOpts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find blog posts: %w", err)
	}
	var docs []blogDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode blog posts: %w", err)
	}

	posts := make([]*model.BlogPost, 0, len(docs))
	for i := range docs {
		p := docs[i].BlogPost
		p.ID = docs[i].ID.Hex()
		if p.Tags == nil {
			p.Tags = []string{}
		}
		posts = append(posts, &p)
	}
	return posts, nil
}

// blogFilter builds the query document for opts. The search term is matched
// literally; a regex against the tags array matches if any element matches.
func blogFilter(opts model.BlogListOptions) bson.M {
	filter := bson.M{}
	if opts.Category != "" && opts.Category != model.BlogCategoryAll {
		filter["category"] = opts.Category
	}
	if opts.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(opts.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"excerpt": re},
			bson.M{"tags": re},
		}
	}
	return filter
}

// Seed upserts each post keyed by SeedKey with $setOnInsert, so an existing
// seed post is never touched or duplicated. A duplicate-key error means a
// concurrent seeder won the race for that key and is treated as done.
func (r *MongoBlogRepository) Seed(ctx context.Context, posts []model.BlogPost) (int, error) {
	inserted := 0
	for _, p := range posts {
		if p.SeedKey == "" {
			return inserted, fmt.Errorf("seed blog post %q: empty seed key", p.Title)
		}
		res, err := r.coll.UpdateOne(ctx,
			bson.M{"seedKey": p.SeedKey},
			bson.M{"$setOnInsert": p},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return inserted, fmt.Errorf("seed blog post %q: %w", p.SeedKey, err)
		}
		inserted += int(res.UpsertedCount)
	}
	return inserted, nil
}
