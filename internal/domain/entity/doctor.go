package entity

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DoctorID accepts both string and numeric identifiers from catalog sources
// and always stores them as text.
type DoctorID string

func (id *DoctorID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DoctorID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = DoctorID(n.String())
	return nil
}

func (id DoctorID) String() string {
	return string(id)
}

// Availability holds the consultation modes a doctor offers
type Availability struct {
	Video    bool `gorm:"column:video;not null;default:false" json:"video"`
	InClinic bool `gorm:"column:in_clinic;not null;default:false" json:"in_clinic"`
}

// Doctor is an immutable directory record. Specialty keeps display order;
// filtering treats it as a set.
type Doctor struct {
	ID           DoctorID        `gorm:"type:varchar(64);primaryKey" json:"id" validate:"required"`
	Name         string          `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	Specialty    []string        `gorm:"-" json:"specialty" validate:"required,min=1,dive,required"`
	Experience   int             `gorm:"not null;default:0" json:"experience" validate:"gte=0"`
	Fees         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fees" validate:"decimal_gte0"`
	Clinic       string          `gorm:"type:varchar(255)" json:"clinic"`
	Availability Availability    `gorm:"embedded;embeddedPrefix:available_" json:"availability"`
	Image        string          `gorm:"type:text" json:"image,omitempty"`
	ListPosition int             `gorm:"not null;default:0;index" json:"-"`

	// Relationships
	Specialties []DoctorSpecialty `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// BeforeCreate materialises the specialty rows from the display list
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if len(d.Specialties) > 0 {
		return nil
	}
	d.Specialties = make([]DoctorSpecialty, len(d.Specialty))
	for i, label := range d.Specialty {
		d.Specialties[i] = DoctorSpecialty{DoctorID: d.ID, Position: i, Label: label}
	}
	return nil
}

// AfterFind rebuilds the display list from preloaded specialty rows
func (d *Doctor) AfterFind(tx *gorm.DB) error {
	if len(d.Specialties) == 0 {
		return nil
	}
	rows := make([]DoctorSpecialty, len(d.Specialties))
	copy(rows, d.Specialties)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	d.Specialty = make([]string, len(rows))
	for i, row := range rows {
		d.Specialty[i] = row.Label
	}
	return nil
}

// HasAnySpecialty reports whether the doctor lists at least one of the labels
func (d Doctor) HasAnySpecialty(labels []string) bool {
	for _, own := range d.Specialty {
		for _, label := range labels {
			if own == label {
				return true
			}
		}
	}
	return false
}

// DoctorSpecialty is one specialty label of a doctor, ordered by Position
type DoctorSpecialty struct {
	DoctorID DoctorID `gorm:"type:varchar(64);primaryKey" json:"doctor_id"`
	Position int      `gorm:"primaryKey" json:"position"`
	Label    string   `gorm:"type:varchar(100);not null;index" json:"label"`
}

func (DoctorSpecialty) TableName() string {
	return "doctor_specialties"
}
