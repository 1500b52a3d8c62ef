package dto

import (
	"time"

	"menucatalog/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateMenuItemInput is the payload of createMenuItem. Description must be
// stated explicitly, null meaning "no description". Availability may be left
// out and then defaults to In Stock.
type CreateMenuItemInput struct {
	Name         string                    `json:"name"`
	Description  Field[string]             `json:"description,omitzero"`
	Price        float64                   `json:"price"`
	Category     model.Category            `json:"category"`
	Availability Field[model.Availability] `json:"availability,omitzero"`
}

// UpdateMenuItemInput selects a row by ID and carries only the fields to
// change. Unset fields are left untouched; a Null description clears it.
type UpdateMenuItemInput struct {
	ID           int64                     `json:"id"`
	Name         Field[string]             `json:"name,omitzero"`
	Description  Field[string]             `json:"description,omitzero"`
	Price        Field[float64]            `json:"price,omitzero"`
	Category     Field[model.Category]     `json:"category,omitzero"`
	Availability Field[model.Availability] `json:"availability,omitzero"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// MenuItemResponse is the decoded entity returned by every read and write.
// Timestamps marshal as RFC 3339 with nanoseconds and keep their offset.
type MenuItemResponse struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Description  *string            `json:"description"`
	Price        float64            `json:"price"`
	Category     model.Category     `json:"category"`
	Availability model.Availability `json:"availability"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type DeleteMenuItemResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	OK        bool      `json:"ok"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	DB        string    `json:"db"`
	Redis     string    `json:"redis"`
}
