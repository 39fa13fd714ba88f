package distanceaccumulator

import "github.com/umahmood/haversine"

// DistanceAccumulator struct that collects data about the distance traveled in trips
// + Counter: counts the amount of trips collected
// + TotalDistance: sum of distances traveled, in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) GetAverageDistance() float64 {
	if da.Counter == 0 {
		panic("[DistanceAccumulator] cannot get average, counter is zero")
	}
	return da.TotalDistance / float64(da.Counter)
}

// CalculateDistance returns the distance in kilometers between two points using haversine formula
func CalculateDistance(latStart float64, longStart float64, latEnd float64, longEnd float64) float64 {
	start := haversine.Coord{Lat: latStart, Lon: longStart}
	end := haversine.Coord{Lat: latEnd, Lon: longEnd}

	_, km := haversine.Distance(start, end)
	return km
}
