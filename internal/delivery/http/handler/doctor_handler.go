package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"
)

const (
	doctorsPath = "/api/v1/doctors"

	// maxQueryLength matches the max tag on search values in request bodies
	maxQueryLength = "255"

	dataLoadFailureMessage = "Failed to load doctors data. Please try again later."
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// ListDoctors renders the directory for the filter state in the query string
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	directory, err := h.directoryUsecase.Browse(r.Context(), r.URL.Query())
	if err != nil {
		h.handleLoadError(w, err, "Failed to get doctors")
		return
	}

	setCanonicalLocation(w, directory.Query)
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", directory)
}

// ApplyFilterAction applies one filter intent to the state in the query string
func (h *DoctorHandler) ApplyFilterAction(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	directory, err := h.directoryUsecase.Dispatch(r.Context(), r.URL.Query(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidFilterAction) {
			response.Error(w, http.StatusBadRequest, "Invalid filter action", nil)
			return
		}
		h.handleLoadError(w, err, "Failed to apply filter")
		return
	}

	setCanonicalLocation(w, directory.Query)
	response.Success(w, http.StatusOK, "Filters applied successfully", directory)
}

// GetSuggestions returns autocomplete suggestions for ?q=
func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if err := h.validator.ValidateVar(q, "max="+maxQueryLength); err != nil {
		response.ValidationError(w, map[string]string{"q": "q must be at most " + maxQueryLength + " characters"})
		return
	}

	suggestions, err := h.directoryUsecase.Suggest(r.Context(), q)
	if err != nil {
		h.handleLoadError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

// HandleAutocomplete replays one search box event
func (h *DoctorHandler) HandleAutocomplete(w http.ResponseWriter, r *http.Request) {
	var req dto.AutocompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.directoryUsecase.Autocomplete(r.Context(), r.URL.Query(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAutocompleteEvent) {
			response.Error(w, http.StatusBadRequest, "Invalid autocomplete event", nil)
			return
		}
		h.handleLoadError(w, err, "Failed to update search")
		return
	}

	if result.Directory != nil {
		setCanonicalLocation(w, result.Directory.Query)
	}
	response.Success(w, http.StatusOK, "Search updated successfully", result)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.GetSpecialties(r.Context())
	if err != nil {
		h.handleLoadError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) handleLoadError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, usecase.ErrDataLoadFailure) {
		response.Error(w, http.StatusServiceUnavailable, dataLoadFailureMessage, response.RetryHint{Retryable: true})
		return
	}
	response.InternalServerError(w, fallback)
}

// setCanonicalLocation points clients at the URL that reproduces this view,
// to be used as a history replace rather than a push.
func setCanonicalLocation(w http.ResponseWriter, query string) {
	location := doctorsPath
	if query != "" {
		location += "?" + query
	}
	w.Header().Set("Content-Location", location)
}
