package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLeadRequest struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Tags   []string `json:"tags"`
	Source string   `json:"source"`
	Status string   `json:"status"`
	Notes  string   `json:"notes"`
}

// UpdateLeadRequest uses pointers so omitted fields are left untouched.
type UpdateLeadRequest struct {
	Name   *string   `json:"name"`
	Email  *string   `json:"email"`
	Phone  *string   `json:"phone"`
	Tags   *[]string `json:"tags"`
	Source *string   `json:"source"`
	Status *string   `json:"status"`
	Notes  *string   `json:"notes"`
}

type LeadResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Tags      []string  `json:"tags"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeadListResponse struct {
	Leads []LeadResponse `json:"leads"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportResultResponse struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors"`
}
