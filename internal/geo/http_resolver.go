package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type httpResolver struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewHTTPResolver queries an ip-api compatible endpoint: GET <baseURL><ip>.
func NewHTTPResolver(baseURL string, timeout time.Duration, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("geo.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("geo.resolver")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &httpResolver{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		logger:  l,
	}
}

func (r *httpResolver) Resolve(ctx context.Context, ip string) (Location, error) {
	url := r.baseURL + publicIP(ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, ErrGeolocationUnavailable.WithCause(err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("geolocation request failed", zap.String("ip", ip), zap.Error(err))
		return Location{}, ErrGeolocationUnavailable.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, ErrGeolocationUnavailable.WithCause(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, ErrGeolocationUnavailable.WithCause(err)
	}
	if body.Status != "success" {
		return Location{}, ErrGeolocationUnavailable.WithCause(fmt.Errorf("lookup failed: %s", body.Message))
	}

	return Location{City: body.City, Latitude: body.Lat, Longitude: body.Lon}, nil
}
