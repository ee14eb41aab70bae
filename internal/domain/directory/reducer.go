package directory

import (
	"slices"

	"go-doctor-directory/internal/domain/entity"
)

// ActionType names a user intent that changes filter state
type ActionType string

const (
	ActionSetSearch          ActionType = "set_search"
	ActionToggleSpecialty    ActionType = "toggle_specialty"
	ActionToggleConsultation ActionType = "toggle_consultation"
	ActionToggleSort         ActionType = "toggle_sort"
	ActionReset              ActionType = "reset"
)

// ActionTypes lists every action Reduce understands
var ActionTypes = []ActionType{
	ActionSetSearch,
	ActionToggleSpecialty,
	ActionToggleConsultation,
	ActionToggleSort,
	ActionReset,
}

// Valid reports whether t is a known action type
func (t ActionType) Valid() bool {
	return slices.Contains(ActionTypes, t)
}

// Action is a single state transition request. Value carries the search
// text, specialty label, consultation mode or sort key depending on Type.
type Action struct {
	Type  ActionType
	Value string
}

// Reduce returns the state that results from applying action to state. state
// is not modified. Unknown actions and unknown enumerated values leave the
// state as it was.
func Reduce(state entity.FilterState, action Action) entity.FilterState {
	next := state.Clone()

	switch action.Type {
	case ActionSetSearch:
		next.SearchQuery = action.Value

	case ActionToggleSpecialty:
		if action.Value == "" {
			break
		}
		if !next.HasSpecialty(action.Value) {
			next.Specialties = append(next.Specialties, action.Value)
			break
		}
		i := slices.Index(next.Specialties, action.Value)
		next.Specialties = slices.Delete(next.Specialties, i, i+1)
		if len(next.Specialties) == 0 {
			next.Specialties = nil
		}

	case ActionToggleConsultation:
		mode := entity.ParseConsultationType(action.Value)
		if mode == entity.ConsultationNone {
			break
		}
		if next.Consultation == mode {
			next.Consultation = entity.ConsultationNone
		} else {
			next.Consultation = mode
		}

	case ActionToggleSort:
		by := entity.ParseSortBy(action.Value)
		if by == entity.SortNone {
			break
		}
		if next.Sort == by {
			next.Sort = entity.SortNone
		} else {
			next.Sort = by
		}

	case ActionReset:
		next = entity.FilterState{}
	}

	return next
}
