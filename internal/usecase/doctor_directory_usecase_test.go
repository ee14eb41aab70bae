package usecase_test

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"testing"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/directory"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/mock"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func catalogOf(doctors []entity.Doctor) *mock.DoctorCatalogService {
	return &mock.DoctorCatalogService{
		FetchDoctorsFn:      func(ctx context.Context) ([]entity.Doctor, error) { return doctors, nil },
		GetAllSpecialtiesFn: directory.Specialties,
	}
}

func failingCatalog() *mock.DoctorCatalogService {
	return &mock.DoctorCatalogService{
		FetchDoctorsFn: func(ctx context.Context) ([]entity.Doctor, error) {
			return nil, fmt.Errorf("%w: timeout", service.ErrDataLoadFailure)
		},
	}
}

func testDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "1", Name: "Alice Rao", Specialty: []string{"Cardiology"}, Experience: 5, Fees: decimal.NewFromInt(500),
			Availability: entity.Availability{Video: true, InClinic: true}},
		{ID: "2", Name: "Bob Iyer", Specialty: []string{"ENT"}, Experience: 10, Fees: decimal.NewFromInt(300),
			Availability: entity.Availability{Video: true}},
		{ID: "3", Name: "Alina Das", Specialty: []string{"Dentist", "ENT"}, Experience: 8, Fees: decimal.NewFromInt(400),
			Availability: entity.Availability{InClinic: true}},
	}
}

func names(resp *dto.DoctorDirectoryResponse) []string {
	out := make([]string, len(resp.Doctors))
	for i, d := range resp.Doctors {
		out[i] = d.Name
	}
	return out
}

func TestDoctorDirectoryUsecase_Browse(t *testing.T) {
	t.Parallel()

	t.Run("renders the state decoded from the query", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Browse(context.Background(), url.Values{
			"consultation": {"video"},
			"sort":         {"fees"},
			"utm_source":   {"ignored"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"Bob Iyer", "Alice Rao"}, names(resp))
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "consultation=video&sort=fees", resp.Query)
		assert.Equal(t, "video", resp.Filters.ConsultationType)
		assert.Equal(t, "fees", resp.Filters.SortBy)
		assert.Equal(t, []string{"Cardiology", "Dentist", "ENT"}, resp.Specialties)
	})

	t.Run("unknown values canonicalise away", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Browse(context.Background(), url.Values{"sort": {"rating"}})
		require.NoError(t, err)

		assert.Equal(t, "", resp.Query)
		assert.Equal(t, 3, resp.Total)
	})

	t.Run("load failure propagates", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), failingCatalog())

		_, err := uc.Browse(context.Background(), url.Values{})

		assert.ErrorIs(t, err, usecase.ErrDataLoadFailure)
	})
}

func TestDoctorDirectoryUsecase_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("toggle off the active consultation", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Dispatch(context.Background(),
			url.Values{"consultation": {"video"}, "specialties": {"ENT"}},
			&dto.FilterActionRequest{Type: "toggle_consultation", Value: "video"})
		require.NoError(t, err)

		assert.Equal(t, "specialties=ENT", resp.Query)
		assert.Equal(t, "", resp.Filters.ConsultationType)
		assert.Equal(t, []string{"Bob Iyer", "Alina Das"}, names(resp))
	})

	t.Run("toggle a specialty on", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Dispatch(context.Background(),
			url.Values{"specialties": {"ENT"}},
			&dto.FilterActionRequest{Type: "toggle_specialty", Value: "Cardiology"})
		require.NoError(t, err)

		assert.Equal(t, "specialties=ENT%2CCardiology", resp.Query)
		assert.Equal(t, []string{"ENT", "Cardiology"}, resp.Filters.SelectedSpecialties)
		assert.Equal(t, 3, resp.Total)
	})

	t.Run("unknown action type is rejected", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		_, err := uc.Dispatch(context.Background(), url.Values{}, &dto.FilterActionRequest{Type: "explode"})

		assert.ErrorIs(t, err, usecase.ErrInvalidFilterAction)
	})
}

func TestDoctorDirectoryUsecase_Suggest(t *testing.T) {
	t.Parallel()

	uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

	resp, err := uc.Suggest(context.Background(), "ali")
	require.NoError(t, err)
	assert.True(t, resp.Visible)
	assert.Equal(t, []dto.DoctorSuggestion{{ID: "1", Name: "Alice Rao"}, {ID: "3", Name: "Alina Das"}}, resp.Suggestions)

	resp, err = uc.Suggest(context.Background(), "  ")
	require.NoError(t, err)
	assert.False(t, resp.Visible)
	assert.Empty(t, resp.Suggestions)
}

func TestDoctorDirectoryUsecase_Autocomplete(t *testing.T) {
	t.Parallel()

	t.Run("typing only updates suggestions", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Autocomplete(context.Background(), url.Values{},
			&dto.AutocompleteRequest{Event: "input", Value: "bob"})
		require.NoError(t, err)

		assert.False(t, resp.Committed)
		assert.Nil(t, resp.Directory)
		assert.True(t, resp.Visible)
		assert.Equal(t, "bob", resp.Query)
		assert.Len(t, resp.Suggestions, 1)
	})

	t.Run("selecting a suggestion commits the name into the directory", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Autocomplete(context.Background(), url.Values{"sort": {"experience"}},
			&dto.AutocompleteRequest{Event: "select", Query: "ali", Visible: true, Value: "Alina Das"})
		require.NoError(t, err)

		require.True(t, resp.Committed)
		require.NotNil(t, resp.Directory)
		assert.False(t, resp.Visible)
		assert.Equal(t, "Alina Das", resp.Query)
		assert.Equal(t, "name=Alina+Das&sort=experience", resp.Directory.Query)
		assert.Equal(t, []string{"Alina Das"}, names(resp.Directory))
	})

	t.Run("submit commits the raw text", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Autocomplete(context.Background(), url.Values{},
			&dto.AutocompleteRequest{Event: "submit", Query: "ALI", Visible: true})
		require.NoError(t, err)

		require.True(t, resp.Committed)
		assert.False(t, resp.Visible)
		assert.Equal(t, "name=ALI", resp.Directory.Query)
		assert.Equal(t, []string{"Alice Rao", "Alina Das"}, names(resp.Directory))
	})

	t.Run("clearing the box clears the name filter", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Autocomplete(context.Background(), url.Values{"name": {"bob"}},
			&dto.AutocompleteRequest{Event: "input", Query: "b", Value: ""})
		require.NoError(t, err)

		require.True(t, resp.Committed)
		assert.Equal(t, "", resp.Directory.Query)
		assert.Equal(t, 3, resp.Directory.Total)
	})

	t.Run("dismiss closes without committing", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		resp, err := uc.Autocomplete(context.Background(), url.Values{},
			&dto.AutocompleteRequest{Event: "dismiss", Query: "ali", Visible: true})
		require.NoError(t, err)

		assert.False(t, resp.Committed)
		assert.False(t, resp.Visible)
		assert.Len(t, resp.Suggestions, 2)
	})

	t.Run("unknown event is rejected", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

		_, err := uc.Autocomplete(context.Background(), url.Values{}, &dto.AutocompleteRequest{Event: "hover"})

		assert.ErrorIs(t, err, usecase.ErrInvalidAutocompleteEvent)
	})
}

func TestDoctorDirectoryUsecase_GetSpecialties(t *testing.T) {
	t.Parallel()

	uc := usecase.NewDoctorDirectoryUsecase(quietLogger(), catalogOf(testDoctors()))

	resp, err := uc.GetSpecialties(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Cardiology", "Dentist", "ENT"}, resp.Specialties)
	assert.Equal(t, 3, resp.Total)

	_, err = usecase.NewDoctorDirectoryUsecase(quietLogger(), failingCatalog()).GetSpecialties(context.Background())
	assert.ErrorIs(t, err, usecase.ErrDataLoadFailure)
}
