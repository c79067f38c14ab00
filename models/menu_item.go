package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is the persisted catalog entity. ID and the timestamps are
// assigned by the repository on write and are never taken from clients.
type MenuItem struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Category     string             `json:"category" bson:"category"`
	Price        float64            `json:"price" bson:"price"`
	Description  string             `json:"description" bson:"description"`
	IsVegetarian bool               `json:"isVegetarian" bson:"isVegetarian"`
	IsAvailable  bool               `json:"isAvailable" bson:"isAvailable"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// MenuItemDraft is the client-supplied shape for create and update.
// IsAvailable defaults to true when the field is omitted from the body.
type MenuItemDraft struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	Description  string  `json:"description" validate:"required"`
	IsVegetarian bool    `json:"isVegetarian"`
	IsAvailable  *bool   `json:"isAvailable"`
}

// ValidationError reports a rejected draft field. The message is safe to
// return to clients verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks the draft against the data-model invariants: required
// fields present, category in the registry, price non-negative. The
// first violation found is returned.
func (d *MenuItemDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Reason: "description is required"}
	}
	if d.Category == "" {
		return &ValidationError{Field: "category", Reason: "category is required"}
	}
	if !IsValidCategory(d.Category) {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("'%s' is not a valid category", d.Category)}
	}
	if d.Price < 0 {
		return &ValidationError{Field: "price", Reason: "price must not be negative"}
	}
	return nil
}

// Available resolves the draft's availability flag, defaulting to true.
func (d *MenuItemDraft) Available() bool {
	if d.IsAvailable == nil {
		return true
	}
	return *d.IsAvailable
}

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Category   string      `json:"category,omitempty"`
	TotalPages int         `json:"totalPages,omitempty"`
	Token      string      `json:"token,omitempty"`
	User       interface{} `json:"user,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
