package entity

import (
	"math"
	"time"
)

// Comment is a single user's comment on a product. A user has at most one
// comment per product; a repeated comment replaces the previous text.
type Comment struct {
	UserID string `json:"user_id" firestore:"userId"`
	Text   string `json:"text" firestore:"text"`
}

// Rating is a single user's rating on a product, value in [1,5].
type Rating struct {
	UserID string `json:"user_id" firestore:"userId"`
	Value  int    `json:"value" firestore:"value"`
}

type Product struct {
	ID                 string    `json:"id" firestore:"id"`
	Name               string    `json:"name" firestore:"name"`
	Caption            string    `json:"caption" firestore:"caption"`
	ImageURLs          []string  `json:"image_urls" firestore:"imageUrls"`
	OwnerID            string    `json:"owner_id" firestore:"ownerId"`
	Price              float64   `json:"price" firestore:"price"`
	DiscountPercentage float64   `json:"discount_percentage" firestore:"discountPercentage"`
	Category           string    `json:"category" firestore:"category"`
	Subcategory        string    `json:"subcategory" firestore:"subcategory"`
	Likes              []string  `json:"likes" firestore:"likes"`
	Comments           []Comment `json:"comments" firestore:"comments"`
	Ratings            []Rating  `json:"ratings" firestore:"ratings"`
	OverallRating      *float64  `json:"overall_rating,omitempty" firestore:"overallRating,omitempty"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`

	// Owner is resolved from the shops collection when serving reads; it is
	// never written back with the product document.
	Owner *Shop `json:"owner,omitempty" firestore:"-"`
}

// ToggleLike removes userID from the like list when present (unlike) or
// appends it otherwise (like). Removal is by value, so the list never holds
// duplicates. Reports whether the product is liked after the call.
func (p *Product) ToggleLike(userID string) bool {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false
		}
	}
	p.Likes = append(p.Likes, userID)
	return true
}

// IsLikedBy reports whether userID currently likes the product.
func (p *Product) IsLikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// UpsertComment replaces the user's existing comment in place, keeping its
// original position, or appends a new one. The scan is what enforces the
// one-comment-per-user rule; there is no structural constraint behind it.
// Reports whether an existing comment was replaced.
func (p *Product) UpsertComment(userID, text string) bool {
	for i := range p.Comments {
		if p.Comments[i].UserID == userID {
			p.Comments[i].Text = text
			return true
		}
	}
	p.Comments = append(p.Comments, Comment{UserID: userID, Text: text})
	return false
}

// UpsertRating updates the user's existing rating in place or appends a new
// one, then refreshes OverallRating. Both happen in the same call so the
// derived value can never drift from the rating list.
func (p *Product) UpsertRating(userID string, value int) {
	found := false
	for i := range p.Ratings {
		if p.Ratings[i].UserID == userID {
			p.Ratings[i].Value = value
			found = true
			break
		}
	}
	if !found {
		p.Ratings = append(p.Ratings, Rating{UserID: userID, Value: value})
	}
	p.RecomputeOverallRating()
}

// RecomputeOverallRating sets OverallRating to the mean of all rating values
// rounded to one decimal place, or nil when there are no ratings.
func (p *Product) RecomputeOverallRating() {
	if len(p.Ratings) == 0 {
		p.OverallRating = nil
		return
	}
	total := 0
	for _, r := range p.Ratings {
		total += r.Value
	}
	mean := math.Round(float64(total)/float64(len(p.Ratings))*10) / 10
	p.OverallRating = &mean
}
