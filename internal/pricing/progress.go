package pricing

// ProgressPercentage is the share of the party already filled, assuming only
// the organizer's slot is taken. Non-positive party sizes yield 0.
func ProgressPercentage(players int) float64 {
	if players <= 0 {
		return 0
	}
	return (1 / float64(players)) * 100
}
