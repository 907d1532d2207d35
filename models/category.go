// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category is a colored tag an account can attach to its secret records.
type Category struct {
	ID     string `db:"id" json:"id"`
	UserID string `db:"user_id" json:"userId"`
	Name   string `db:"name" json:"name"`
	// Color is a CSS hex color in the #rrggbb form.
	Color string `db:"color" json:"color"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// CategoryUpdate is a partial update of a category. Nil fields are ignored.
type CategoryUpdate struct {
	ID     string  `json:"-"`
	UserID string  `json:"userId"`
	Name   *string `json:"name,omitempty"`
	Color  *string `json:"color,omitempty"`
}

// IsEmpty reports whether the update carries no field to change.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Color == nil
}

// DefaultCategories are created for every newly registered account.
var DefaultCategories = []Category{
	{Name: "Personnel", Color: "#3b82f6"},
	{Name: "Travail", Color: "#10b981"},
	{Name: "Finance", Color: "#f59e0b"},
	{Name: "Social", Color: "#ec4899"},
}
