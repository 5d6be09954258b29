package blog

import (
	"fmt"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatedAt is recovered from the timestamp embedded in the post id.
func (p Post) CreatedAt() time.Time {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return time.Time{}
	}
	return oid.Timestamp()
}

func (p Post) ReadTime() string {
	minutes := utf8.RuneCountInString(p.Content) / 1000
	if minutes < 1 {
		return "1 min read"
	}
	return fmt.Sprintf("%d min read", minutes)
}

// NewID returns a fresh post id. Every store uses the ObjectID hex form so
// ids stay valid when posts move between backends.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func ValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
