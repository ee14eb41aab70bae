package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type FilterActionRequest struct {
	Type  string `json:"type" validate:"required,oneof=set_search toggle_specialty toggle_consultation toggle_sort reset"`
	Value string `json:"value" validate:"max=255"`
}

// AutocompleteRequest carries the client's current search box state and the
// event that happened to it.
type AutocompleteRequest struct {
	Event   string `json:"event" validate:"required,oneof=input focus select submit dismiss"`
	Query   string `json:"query" validate:"max=255"`
	Value   string `json:"value" validate:"max=255"`
	Visible bool   `json:"visible"`
}

// Response DTOs

type AvailabilityResponse struct {
	Video    bool `json:"video"`
	InClinic bool `json:"in_clinic"`
}

type DoctorResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Specialty    []string             `json:"specialty"`
	Experience   int                  `json:"experience"`
	Fees         decimal.Decimal      `json:"fees"`
	Clinic       string               `json:"clinic"`
	Availability AvailabilityResponse `json:"availability"`
	Image        string               `json:"image,omitempty"`
}

type FilterStateResponse struct {
	SearchQuery         string   `json:"search_query"`
	SelectedSpecialties []string `json:"selected_specialties"`
	ConsultationType    string   `json:"consultation_type"`
	SortBy              string   `json:"sort_by"`
}

// DoctorDirectoryResponse is one rendering of the directory: the visible
// doctors, the state that produced them and the canonical query string for it.
type DoctorDirectoryResponse struct {
	Doctors     []DoctorResponse    `json:"doctors"`
	Total       int                 `json:"total"`
	Filters     FilterStateResponse `json:"filters"`
	Query       string              `json:"query"`
	Specialties []string            `json:"specialties"`
}

type DoctorSuggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SuggestionListResponse struct {
	Query       string             `json:"query"`
	Suggestions []DoctorSuggestion `json:"suggestions"`
	Visible     bool               `json:"visible"`
}

type AutocompleteResponse struct {
	Query       string                   `json:"query"`
	Suggestions []DoctorSuggestion       `json:"suggestions"`
	Visible     bool                     `json:"visible"`
	Committed   bool                     `json:"committed"`
	Directory   *DoctorDirectoryResponse `json:"directory,omitempty"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
