package directory_test

import (
	"testing"

	"go-doctor-directory/internal/domain/directory"
	"go-doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("default state returns every doctor in list order", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{})

		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
	})

	t.Run("name search is a case-insensitive substring match", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{SearchQuery: "ALI"})

		assert.Equal(t, []string{"1", "3", "4", "5"}, ids(got))
	})

	t.Run("whitespace-only search means no name filter", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{SearchQuery: "   "})

		assert.Len(t, got, 5)
	})

	t.Run("name search lowercases without case folding", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{
			doctor("s", "Dr. Strauß", 100, 1, true, true, "ENT"),
			doctor("o", "Dr. Öztürk", 100, 1, true, true, "ENT"),
		}

		assert.Empty(t, directory.Apply(doctors, entity.FilterState{SearchQuery: "ss"}))
		assert.Equal(t, []string{"s"}, ids(directory.Apply(doctors, entity.FilterState{SearchQuery: "STRAUß"})))
		assert.Equal(t, []string{"o"}, ids(directory.Apply(doctors, entity.FilterState{SearchQuery: "ÖZT"})))
	})

	t.Run("video consultation keeps doctors offering video", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{Consultation: entity.ConsultationVideo})

		assert.Equal(t, []string{"1", "3", "4"}, ids(got))
	})

	t.Run("clinic consultation keeps doctors offering in-clinic visits", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{Consultation: entity.ConsultationClinic})

		assert.Equal(t, []string{"2", "3", "5"}, ids(got))
	})

	t.Run("specialties keep doctors sharing at least one label", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{Specialties: []string{"Dentist", "ENT"}})

		assert.Equal(t, []string{"2", "3", "4"}, ids(got))
	})

	t.Run("fees sort ascending and stable", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{Sort: entity.SortFees})

		// Bob and Carol both charge 300 and keep their list order.
		assert.Equal(t, []string{"5", "2", "3", "1", "4"}, ids(got))
	})

	t.Run("experience sort descending and stable", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{Sort: entity.SortExperience})

		// Bob and Dev both have 10 years and keep their list order.
		assert.Equal(t, []string{"3", "2", "4", "1", "5"}, ids(got))
	})

	t.Run("unknown enum values are no-ops", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{
			Consultation: entity.ConsultationType(42),
			Sort:         entity.SortBy(42),
		})

		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
	})

	t.Run("combined predicates then sort", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(sampleDoctors(), entity.FilterState{
			SearchQuery:  "a",
			Consultation: entity.ConsultationVideo,
			Specialties:  []string{"Cardiology", "Dentist"},
			Sort:         entity.SortFees,
		})

		assert.Equal(t, []string{"3", "1", "4"}, ids(got))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		t.Parallel()

		doctors := sampleDoctors()
		before := ids(doctors)

		got := directory.Apply(doctors, entity.FilterState{Sort: entity.SortFees})
		require.NotEmpty(t, got)
		got[0].Name = "changed"

		assert.Equal(t, before, ids(doctors))
		assert.Equal(t, "Alice Rao", doctors[0].Name)
	})

	t.Run("empty input returns empty result", func(t *testing.T) {
		t.Parallel()

		got := directory.Apply(nil, entity.FilterState{SearchQuery: "x", Sort: entity.SortFees})

		assert.Empty(t, got)
	})
}

func TestApply_Scenario(t *testing.T) {
	t.Parallel()

	doctors := []entity.Doctor{
		doctor("alice", "Alice Rao", 500, 5, true, true, "Cardiology"),
		doctor("bob", "Bob Iyer", 300, 10, true, true, "ENT"),
	}

	assert.Equal(t, []string{"bob", "alice"}, ids(directory.Apply(doctors, entity.FilterState{Sort: entity.SortFees})))
	assert.Equal(t, []string{"bob", "alice"}, ids(directory.Apply(doctors, entity.FilterState{Sort: entity.SortExperience})))
	assert.Equal(t, []string{"alice"}, ids(directory.Apply(doctors, entity.FilterState{SearchQuery: "ali"})))
}

func TestApply_Properties(t *testing.T) {
	t.Parallel()

	states := []entity.FilterState{
		{},
		{SearchQuery: "a"},
		{Consultation: entity.ConsultationVideo, Sort: entity.SortFees},
		{Consultation: entity.ConsultationClinic, Sort: entity.SortExperience},
		{Specialties: []string{"Cardiology"}, Sort: entity.SortExperience},
		{SearchQuery: "i", Specialties: []string{"Dentist", "Dermatology"}, Sort: entity.SortFees},
	}

	for _, state := range states {
		doctors := sampleDoctors()
		got := directory.Apply(doctors, state)

		t.Run("result is a subset without duplicates", func(t *testing.T) {
			seen := make(map[entity.DoctorID]bool)
			for _, d := range got {
				assert.False(t, seen[d.ID], "duplicate %s", d.ID)
				seen[d.ID] = true
				assert.Contains(t, ids(doctors), d.ID.String())
			}
		})

		t.Run("adjacent pairs respect the sort key", func(t *testing.T) {
			for i := 1; i < len(got); i++ {
				a, b := got[i-1], got[i]
				switch state.Sort {
				case entity.SortFees:
					assert.True(t, a.Fees.LessThanOrEqual(b.Fees))
				case entity.SortExperience:
					assert.GreaterOrEqual(t, a.Experience, b.Experience)
				}
			}
		})

		t.Run("applying twice changes nothing", func(t *testing.T) {
			assert.Equal(t, ids(got), ids(directory.Apply(got, state)))
		})
	}
}

func TestSpecialties(t *testing.T) {
	t.Parallel()

	got := directory.Specialties(sampleDoctors())

	assert.Equal(t, []string{"Cardiology", "Dentist", "Dermatology", "ENT", "General Physician"}, got)
	assert.Empty(t, directory.Specialties(nil))
}
