package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-doctor-directory/internal/domain/entity"
)

// maxCatalogBytes caps the size of a fetched doctor list
const maxCatalogBytes = 16 << 20

// HTTPDoctorSource loads the doctor list from a static JSON document
type HTTPDoctorSource struct {
	url    string
	client *http.Client
}

func NewHTTPDoctorSource(url string, timeout time.Duration) *HTTPDoctorSource {
	return &HTTPDoctorSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPDoctorSource) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.url, resp.StatusCode)
	}

	var doctors []entity.Doctor
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogBytes)).Decode(&doctors); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.url, err)
	}

	return doctors, nil
}
