// Package rent provides a heuristic monthly rent range estimate.
package rent

import "github.com/propwise/propwise/pkg/constants"

// EstimateRange returns the low and high achievable monthly rent for a
// property based on its floor area. The zip code is accepted for future
// location-sensitive rates but does not currently affect the range; the model
// is a flat dollars-per-square-foot band.
func EstimateRange(squareFootage float64, zipCode string) (low, high float64) {
	_ = zipCode
	return squareFootage * constants.RentLowRate, squareFootage * constants.RentHighRate
}
