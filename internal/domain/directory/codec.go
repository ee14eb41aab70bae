package directory

import (
	"net/url"
	"slices"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// Query string keys shared with deep links
const (
	ParamName         = "name"
	ParamConsultation = "consultation"
	ParamSort         = "sort"
	ParamSpecialties  = "specialties"
)

const specialtySeparator = ","

// Encode serialises state into a query string. Only non-default values are
// written, always in the order name, consultation, sort, specialties.
func Encode(state entity.FilterState) string {
	parts := make([]string, 0, 4)

	if state.SearchQuery != "" {
		parts = append(parts, ParamName+"="+url.QueryEscape(state.SearchQuery))
	}
	if consultation := state.Consultation.String(); consultation != "" {
		parts = append(parts, ParamConsultation+"="+url.QueryEscape(consultation))
	}
	if sortBy := state.Sort.String(); sortBy != "" {
		parts = append(parts, ParamSort+"="+url.QueryEscape(sortBy))
	}
	if len(state.Specialties) > 0 {
		joined := strings.Join(state.Specialties, specialtySeparator)
		parts = append(parts, ParamSpecialties+"="+url.QueryEscape(joined))
	}

	return strings.Join(parts, "&")
}

// Decode applies the filter keys present in values on top of base. Keys that
// are absent or empty leave the matching field of base untouched. Enumerated
// values that are not recognised decode to their default variant.
func Decode(values url.Values, base entity.FilterState) entity.FilterState {
	state := base.Clone()

	if name := values.Get(ParamName); name != "" {
		state.SearchQuery = name
	}
	if consultation := values.Get(ParamConsultation); consultation != "" {
		state.Consultation = entity.ParseConsultationType(consultation)
	}
	if sortBy := values.Get(ParamSort); sortBy != "" {
		state.Sort = entity.ParseSortBy(sortBy)
	}
	if specialties := values.Get(ParamSpecialties); specialties != "" {
		state.Specialties = splitSpecialties(specialties)
	}

	return state
}

// DecodeQuery parses a raw query string and decodes it on top of base. A query
// string that cannot be parsed leaves base unchanged.
func DecodeQuery(rawQuery string, base entity.FilterState) entity.FilterState {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return base.Clone()
	}
	return Decode(values, base)
}

func splitSpecialties(raw string) []string {
	labels := make([]string, 0)
	for _, label := range strings.Split(raw, specialtySeparator) {
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}
