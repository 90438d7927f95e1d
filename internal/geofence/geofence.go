// Package geofence решает, попадает ли координата в круглую геозону района.
package geofence

import (
	"fmt"
	"math"

	"github.com/syket-git/Elaka/internal/models"
)

// EarthRadiusMeters - средний радиус Земли
const EarthRadiusMeters = 6371000.0

// Result - результат проверки точки
type Result struct {
	DistanceMeters float64
	IsValid        bool
}

// ValidateCoordinate проверяет широту и долготу. Значения не обрезаются
func ValidateCoordinate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", models.ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", models.ErrInvalidCoordinate, lng)
	}
	return nil
}

// Distance возвращает расстояние по большому кругу (формула гаверсинусов) в метрах
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// погрешность округления может вывести a за [0, 1]
	a = math.Min(1, math.Max(0, a))

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(a))
}

// Evaluate считает расстояние от точки до центра района и решает, внутри ли она.
// Расстояние округляется до миллиметра, граница радиуса включительна.
func Evaluate(centerLat, centerLng, radiusMeters, lat, lng float64) (Result, error) {
	if err := ValidateCoordinate(centerLat, centerLng); err != nil {
		return Result{}, fmt.Errorf("area center: %w", err)
	}
	if math.IsNaN(radiusMeters) || radiusMeters <= 0 {
		return Result{}, fmt.Errorf("%w: radius %v must be positive", models.ErrInvalidCoordinate, radiusMeters)
	}
	if err := ValidateCoordinate(lat, lng); err != nil {
		return Result{}, err
	}

	distance := roundMillimeters(Distance(centerLat, centerLng, lat, lng))
	return Result{
		DistanceMeters: distance,
		IsValid:        distance <= radiusMeters,
	}, nil
}

func roundMillimeters(meters float64) float64 {
	return math.Round(meters*1000) / 1000
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
