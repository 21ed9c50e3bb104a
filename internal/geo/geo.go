// Package geo resolves a client IP address to an approximate city and coordinates.
package geo

import (
	"context"
	"net"
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
)

var ErrGeolocationUnavailable = apperror.New(
	apperror.CodeServiceUnavailable,
	"Geolocation unavailable",
	http.StatusServiceUnavailable,
)

type Location struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

//go:generate mockgen -source=geo.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	Resolve(ctx context.Context, ip string) (Location, error)
}

// publicIP returns ip when it is a routable address, otherwise "" so the
// lookup falls back to the server's own public address.
func publicIP(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() || parsed.IsLinkLocalUnicast() {
		return ""
	}
	return parsed.String()
}
