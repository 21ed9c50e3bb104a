package attendance

import (
	"fmt"
	"strings"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/geo"
)

const (
	unknownLabel = "Unknown"
	// UnknownLocation is recorded when neither GPS nor IP lookup produced a position.
	UnknownLocation = "Unknown|0.0|0.0"
)

// FormatGPSLocation renders a device fix as "address|lat|lng" with 6 decimals.
func FormatGPSLocation(l GPSLocation) string {
	return fmt.Sprintf("%s|%.6f|%.6f", labelOr(l.Address), l.Latitude, l.Longitude)
}

// FormatGeoLocation renders an IP lookup as "city|lat|lng" with 4 decimals.
func FormatGeoLocation(l geo.Location) string {
	return fmt.Sprintf("%s|%.4f|%.4f", labelOr(l.City), l.Latitude, l.Longitude)
}

func labelOr(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return unknownLabel
	}
	return v
}
