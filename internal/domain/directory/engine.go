package directory

import (
	"cmp"
	"slices"

	"go-doctor-directory/internal/domain/entity"
)

// Apply returns the doctors visible under state. The input slice is never
// modified; the result is always a new slice in input order, except when a
// sort is active, in which case it is stably sorted.
//
// Steps run in a fixed order: name search, consultation mode, specialties,
// then sort.
func Apply(doctors []entity.Doctor, state entity.FilterState) []entity.Doctor {
	result := make([]entity.Doctor, 0, len(doctors))

	var matcher *nameMatcher
	if !isBlank(state.SearchQuery) {
		matcher = newNameMatcher(state.SearchQuery)
	}

	for _, doctor := range doctors {
		if matcher != nil && !matcher.Match(doctor.Name) {
			continue
		}
		if !offersConsultation(doctor, state.Consultation) {
			continue
		}
		if len(state.Specialties) > 0 && !doctor.HasAnySpecialty(state.Specialties) {
			continue
		}
		result = append(result, doctor)
	}

	sortDoctors(result, state.Sort)
	return result
}

func offersConsultation(doctor entity.Doctor, mode entity.ConsultationType) bool {
	switch mode {
	case entity.ConsultationVideo:
		return doctor.Availability.Video
	case entity.ConsultationClinic:
		return doctor.Availability.InClinic
	default:
		return true
	}
}

func sortDoctors(doctors []entity.Doctor, by entity.SortBy) {
	switch by {
	case entity.SortFees:
		slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
			return a.Fees.Cmp(b.Fees)
		})
	case entity.SortExperience:
		slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	}
}

// Specialties returns the distinct specialty labels across doctors, sorted so
// the result is stable for a given input.
func Specialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, doctor := range doctors {
		for _, label := range doctor.Specialty {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)
	return labels
}
