package converter

import (
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = doctorResponse(doctor)
	}
	return responses
}

// DoctorsToSuggestions keeps only what the suggestion list renders
func DoctorsToSuggestions(doctors []entity.Doctor) []dto.DoctorSuggestion {
	suggestions := make([]dto.DoctorSuggestion, len(doctors))
	for i, doctor := range doctors {
		suggestions[i] = dto.DoctorSuggestion{
			ID:   doctor.ID.String(),
			Name: doctor.Name,
		}
	}
	return suggestions
}

// FilterStateToResponse converts the filter state to its wire form
func FilterStateToResponse(state entity.FilterState) dto.FilterStateResponse {
	selected := make([]string, len(state.Specialties))
	copy(selected, state.Specialties)

	return dto.FilterStateResponse{
		SearchQuery:         state.SearchQuery,
		SelectedSpecialties: selected,
		ConsultationType:    state.Consultation.String(),
		SortBy:              state.Sort.String(),
	}
}

func doctorResponse(doctor entity.Doctor) dto.DoctorResponse {
	specialty := make([]string, len(doctor.Specialty))
	copy(specialty, doctor.Specialty)

	return dto.DoctorResponse{
		ID:         doctor.ID.String(),
		Name:       doctor.Name,
		Specialty:  specialty,
		Experience: doctor.Experience,
		Fees:       doctor.Fees,
		Clinic:     doctor.Clinic,
		Availability: dto.AvailabilityResponse{
			Video:    doctor.Availability.Video,
			InClinic: doctor.Availability.InClinic,
		},
		Image: doctor.Image,
	}
}
