package entities

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

type Location struct {
	Address string
	GeoPoint
}
