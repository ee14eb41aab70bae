package usecase

import (
	"errors"

	"go-doctor-directory/internal/service"
)

var (
	ErrInvalidFilterAction      = errors.New("invalid filter action")
	ErrInvalidAutocompleteEvent = errors.New("invalid autocomplete event")

	// ErrDataLoadFailure is re-exported so handlers only depend on usecase
	ErrDataLoadFailure = service.ErrDataLoadFailure
)
