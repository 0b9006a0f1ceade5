package track

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Extend extends boundaries from given decimal degrees
func (b Bounds) Extend(inc float64) Bounds {
	b.MinLat -= inc
	b.MinLng -= inc
	b.MaxLat += inc
	b.MaxLng += inc
	return b
}

// Center returns the middle of the boundaries as (lat, lng).
func (b Bounds) Center() (float64, float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLng + b.MaxLng) / 2
}
