package usecase

import (
	"context"
	"net/url"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/directory"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

// Autocomplete events accepted from clients
const (
	AutocompleteEventInput   = "input"
	AutocompleteEventFocus   = "focus"
	AutocompleteEventSelect  = "select"
	AutocompleteEventSubmit  = "submit"
	AutocompleteEventDismiss = "dismiss"
)

type DoctorDirectoryUsecase interface {
	Browse(ctx context.Context, query url.Values) (*dto.DoctorDirectoryResponse, error)
	Dispatch(ctx context.Context, query url.Values, req *dto.FilterActionRequest) (*dto.DoctorDirectoryResponse, error)
	Suggest(ctx context.Context, q string) (*dto.SuggestionListResponse, error)
	Autocomplete(ctx context.Context, query url.Values, req *dto.AutocompleteRequest) (*dto.AutocompleteResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type doctorDirectoryUsecase struct {
	log     *logrus.Logger
	catalog service.DoctorCatalogService
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, catalog service.DoctorCatalogService) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:     log,
		catalog: catalog,
	}
}

// Browse decodes the filter state from query and renders the directory for it
func (u *doctorDirectoryUsecase) Browse(ctx context.Context, query url.Values) (*dto.DoctorDirectoryResponse, error) {
	state := directory.Decode(query, entity.FilterState{})

	doctors, err := u.catalog.FetchDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, err
	}

	return u.render(doctors, state), nil
}

// Dispatch applies one user intent to the state carried by query
func (u *doctorDirectoryUsecase) Dispatch(ctx context.Context, query url.Values, req *dto.FilterActionRequest) (*dto.DoctorDirectoryResponse, error) {
	action := directory.Action{Type: directory.ActionType(req.Type), Value: req.Value}
	if !action.Type.Valid() {
		return nil, ErrInvalidFilterAction
	}

	doctors, err := u.catalog.FetchDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, err
	}

	state := directory.Decode(query, entity.FilterState{})
	next := directory.Reduce(state, action)

	u.log.WithFields(logrus.Fields{
		"action": action.Type,
		"from":   directory.Encode(state),
		"to":     directory.Encode(next),
	}).Debug("Filter state changed")

	return u.render(doctors, next), nil
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, q string) (*dto.SuggestionListResponse, error) {
	doctors, err := u.catalog.FetchDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, err
	}

	suggestions := directory.Suggest(doctors, q)

	return &dto.SuggestionListResponse{
		Query:       q,
		Suggestions: converter.DoctorsToSuggestions(suggestions),
		Visible:     len(suggestions) > 0,
	}, nil
}

// Autocomplete replays an event on the client's search box. When the event
// commits a search, the directory is re-rendered with it.
func (u *doctorDirectoryUsecase) Autocomplete(ctx context.Context, query url.Values, req *dto.AutocompleteRequest) (*dto.AutocompleteResponse, error) {
	doctors, err := u.catalog.FetchDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, err
	}

	control := directory.Autocomplete{
		Query:       req.Query,
		Suggestions: directory.Suggest(doctors, req.Query),
		Visible:     req.Visible,
	}

	var commit *directory.SearchCommit
	switch req.Event {
	case AutocompleteEventInput:
		control, commit = control.Input(doctors, req.Value)
	case AutocompleteEventFocus:
		control = control.Focus()
	case AutocompleteEventSelect:
		control, commit = control.Select(req.Value)
	case AutocompleteEventSubmit:
		control, commit = control.Submit()
	case AutocompleteEventDismiss:
		control = control.DismissOutside()
	default:
		return nil, ErrInvalidAutocompleteEvent
	}

	resp := &dto.AutocompleteResponse{
		Query:       control.Query,
		Suggestions: converter.DoctorsToSuggestions(control.Suggestions),
		Visible:     control.ShowsSuggestions(),
	}

	if commit != nil {
		state := directory.Decode(query, entity.FilterState{})
		next := directory.Reduce(state, directory.Action{Type: directory.ActionSetSearch, Value: commit.Query})
		resp.Committed = true
		resp.Directory = u.render(doctors, next)
	}

	return resp, nil
}

func (u *doctorDirectoryUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	doctors, err := u.catalog.FetchDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, err
	}

	specialties := u.catalog.GetAllSpecialties(doctors)

	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}, nil
}

func (u *doctorDirectoryUsecase) render(doctors []entity.Doctor, state entity.FilterState) *dto.DoctorDirectoryResponse {
	visible := directory.Apply(doctors, state)

	return &dto.DoctorDirectoryResponse{
		Doctors:     converter.DoctorsToResponses(visible),
		Total:       len(visible),
		Filters:     converter.FilterStateToResponse(state),
		Query:       directory.Encode(state),
		Specialties: u.catalog.GetAllSpecialties(doctors),
	}
}
