package geo

import (
	"math"

	"tracker/internal/entities"
)

// EarthRadiusKm - средний радиус Земли для формулы гаверсинусов.
const EarthRadiusKm = 6371.0

const degToRad = math.Pi / 180

// DistanceKm считает расстояние по дуге большого круга между двумя точками.
// Чистая тотальная функция, NaN на входе дает NaN на выходе.
func DistanceKm(a, b entities.GeoPoint) float64 {
	dLat := (b.Latitude - a.Latitude) * degToRad
	dLon := (b.Longitude - a.Longitude) * degToRad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*degToRad)*math.Cos(b.Latitude*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// EtaMinutes оценивает время до точки назначения при предполагаемой
// скорости speedKmh. ok=false когда координаты отсутствуют или скорость
// невалидна. Для ненулевой дистанции оценка не бывает меньше минуты.
func EtaMinutes(current, destination *entities.GeoPoint, speedKmh float64) (int64, bool) {
	if current == nil || destination == nil || speedKmh <= 0 {
		return 0, false
	}

	distance := DistanceKm(*current, *destination)
	if distance == 0 {
		return 0, true
	}

	minutes := int64(math.Ceil(distance / speedKmh * 60))
	if minutes < 1 {
		minutes = 1
	}
	return minutes, true
}

// ProgressPercent - пройденная доля маршрута start->end в процентах,
// зажатая в [0, 100]. Для вырожденного маршрута (start == end) возвращает 0,
// чтобы не делить на ноль.
func ProgressPercent(start, current, end entities.GeoPoint) float64 {
	total := DistanceKm(start, end)
	if total == 0 {
		return 0
	}

	percent := DistanceKm(start, current) / total * 100
	return math.Min(math.Max(percent, 0), 100)
}
