// Package neshan implements travel-time estimation against the Neshan
// distance-matrix API.
package neshan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// DefaultBaseURL is the production distance-matrix endpoint.
const DefaultBaseURL = "https://api.neshan.org/v1/distance-matrix"

const requestTimeout = 5 * time.Second

// Estimator calls the Neshan distance-matrix API to estimate car travel
// time between two points. It implements ports.TravelEstimator.
//
// Any transport, HTTP, or decoding failure is reported as
// ports.ErrEstimateUnavailable; callers treat estimation as best-effort.
type Estimator struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewEstimator creates an Estimator for the given endpoint and API key.
// An empty baseURL selects DefaultBaseURL.
func NewEstimator(baseURL string, apiKey string) (*Estimator, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Estimator{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

// distanceMatrixResponse mirrors the subset of the Neshan payload we read:
// the duration of the first element of the first row.
type distanceMatrixResponse struct {
	Rows []struct {
		Elements []struct {
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Estimate returns the car travel time in seconds from origin to destination.
func (e *Estimator) Estimate(
	ctx context.Context,
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
) (int, error) {
	if err := origin.Validate(); err != nil {
		return 0, err
	}
	if err := destination.Validate(); err != nil {
		return 0, err
	}

	query := url.Values{}
	query.Set("type", "car")
	query.Set("origins", formatPoint(origin))
	query.Set("destinations", formatPoint(destination))

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, e.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ports.ErrEstimateUnavailable, err)
	}
	req.Header.Set("Api-Key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ports.ErrEstimateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %d", ports.ErrEstimateUnavailable, resp.StatusCode)
	}

	var payload distanceMatrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: %w", ports.ErrEstimateUnavailable, err)
	}

	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("%w: empty distance matrix", ports.ErrEstimateUnavailable)
	}

	return payload.Rows[0].Elements[0].Duration.Value, nil
}

func formatPoint(point kernel.GeoPoint) string {
	return fmt.Sprintf("%.6f,%.6f", point.Latitude(), point.Longitude())
}
