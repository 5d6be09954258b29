package blog

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultMongoDatabase = "blogDB"
	postsCollection      = "posts"
)

type mongoPost struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Title   string             `bson:"title"`
	Content string             `bson:"content"`
}

func (m mongoPost) post() Post {
	return Post{ID: m.ID.Hex(), Title: m.Title, Content: m.Content}
}

// MongoStore keeps posts as documents in the "posts" collection of the
// database named in the connection URI path.
type MongoStore struct {
	client *mongo.Client
	posts  *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "ping mongo")
	}
	return &MongoStore{
		client: client,
		posts:  client.Database(mongoDatabase(uri)).Collection(postsCollection),
	}, nil
}

func mongoDatabase(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultMongoDatabase
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return defaultMongoDatabase
	}
	return name
}

func (s *MongoStore) Insert(ctx context.Context, post Post) (string, error) {
	doc := mongoPost{ID: primitive.NewObjectID(), Title: post.Title, Content: post.Content}
	if _, err := s.posts.InsertOne(ctx, doc); err != nil {
		return "", errors.Wrap(err, "insert post")
	}
	return doc.ID.Hex(), nil
}

func (s *MongoStore) FindAll(ctx context.Context) ([]Post, error) {
	cur, err := s.posts.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "find posts")
	}
	var docs []mongoPost
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode posts")
	}
	posts := make([]Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.post())
	}
	return posts, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Post{}, ErrInvalidID
	}
	var doc mongoPost
	if err := s.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Post{}, ErrNotFound
		}
		return Post{}, errors.Wrap(err, "find post")
	}
	return doc.post(), nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}
