package entity

import (
	"time"
)

type ShopAddress struct {
	Street     string `json:"street" firestore:"street"`
	City       string `json:"city" firestore:"city"`
	PostalCode string `json:"postal_code,omitempty" firestore:"postalCode,omitempty"`
}

type Shop struct {
	ID              string      `json:"id" firestore:"id"`
	UserID          string      `json:"user_id" firestore:"userId"`
	ShopName        string      `json:"shop_name" firestore:"shopName"`
	ShopAddress     ShopAddress `json:"shop_address" firestore:"shopAddress"`
	ShopDescription string      `json:"shop_description,omitempty" firestore:"shopDescription,omitempty"`
	ContactNumber   string      `json:"contact_number,omitempty" firestore:"contactNumber,omitempty"`

	// ProductIDs is a denormalized convenience list of the shop's products.
	ProductIDs []string `json:"product_ids" firestore:"productIds"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// Products is populated on shop reads; not stored with the document.
	Products []*Product `json:"products,omitempty" firestore:"-"`
}

// AttachProduct appends productID to the back-reference list unless it is
// already there. Reports whether the list changed.
func (s *Shop) AttachProduct(productID string) bool {
	for _, id := range s.ProductIDs {
		if id == productID {
			return false
		}
	}
	s.ProductIDs = append(s.ProductIDs, productID)
	return true
}
