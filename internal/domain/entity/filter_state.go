package entity

import "slices"

// ConsultationType is the closed set of consultation modes a directory can be
// narrowed to.
type ConsultationType int

const (
	ConsultationNone ConsultationType = iota
	ConsultationVideo
	ConsultationClinic
)

// ParseConsultationType maps wire values to a ConsultationType. Unknown values
// map to ConsultationNone.
func ParseConsultationType(s string) ConsultationType {
	switch s {
	case "video":
		return ConsultationVideo
	case "clinic":
		return ConsultationClinic
	default:
		return ConsultationNone
	}
}

func (c ConsultationType) String() string {
	switch c {
	case ConsultationVideo:
		return "video"
	case ConsultationClinic:
		return "clinic"
	default:
		return ""
	}
}

// SortBy is the closed set of result orderings
type SortBy int

const (
	SortNone SortBy = iota
	SortFees
	SortExperience
)

// ParseSortBy maps wire values to a SortBy. Unknown values map to SortNone.
func ParseSortBy(s string) SortBy {
	switch s {
	case "fees":
		return SortFees
	case "experience":
		return SortExperience
	default:
		return SortNone
	}
}

func (s SortBy) String() string {
	switch s {
	case SortFees:
		return "fees"
	case SortExperience:
		return "experience"
	default:
		return ""
	}
}

// FilterState is the set of active search, filter and sort selections.
// Specialties has set semantics; insertion order is kept so encoding is
// deterministic. Values are treated as immutable: transitions return a copy.
type FilterState struct {
	SearchQuery  string
	Specialties  []string
	Consultation ConsultationType
	Sort         SortBy
}

// Clone returns a copy that shares no backing storage with s
func (s FilterState) Clone() FilterState {
	out := s
	if s.Specialties != nil {
		out.Specialties = slices.Clone(s.Specialties)
	}
	return out
}

// IsDefault reports whether no filter, search or sort is active
func (s FilterState) IsDefault() bool {
	return s.SearchQuery == "" &&
		len(s.Specialties) == 0 &&
		s.Consultation == ConsultationNone &&
		s.Sort == SortNone
}

// HasSpecialty reports whether label is selected
func (s FilterState) HasSpecialty(label string) bool {
	return slices.Contains(s.Specialties, label)
}
