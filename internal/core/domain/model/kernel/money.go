package kernel

import "math"

// RoundMoney rounds a monetary amount to two decimal places using
// half-away-from-zero rounding.
//
// Every price component in the system is rounded through this function
// before it is summed or persisted, so displayed estimates and stored
// totals can never drift apart through floating point noise.
//
// Example:
//
//	kernel.RoundMoney(12.3456) // 12.35
//	kernel.RoundMoney(7.994)   // 7.99
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
