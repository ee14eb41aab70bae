package directory_test

import (
	"go-doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func doctor(id, name string, fees int64, experience int, video, clinic bool, specialties ...string) entity.Doctor {
	return entity.Doctor{
		ID:           entity.DoctorID(id),
		Name:         name,
		Specialty:    specialties,
		Experience:   experience,
		Fees:         decimal.NewFromInt(fees),
		Clinic:       "Clinic " + id,
		Availability: entity.Availability{Video: video, InClinic: clinic},
	}
}

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		doctor("1", "Alice Rao", 500, 5, true, false, "Cardiology"),
		doctor("2", "Bob Iyer", 300, 10, false, true, "ENT", "General Physician"),
		doctor("3", "Carol Alimov", 300, 12, true, true, "Dentist"),
		doctor("4", "Dev Malik", 800, 10, true, false, "Cardiology", "Dentist"),
		doctor("5", "Esha Kalia", 200, 3, false, true, "Dermatology"),
	}
}

func ids(doctors []entity.Doctor) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.ID.String()
	}
	return out
}
