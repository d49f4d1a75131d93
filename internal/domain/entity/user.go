package entity

import (
	"time"
)

// User is the minimal account record this service reads. Account management
// lives in a separate service; we only resolve display information.
type User struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

const RoleShopkeeper = "shopkeeper"
