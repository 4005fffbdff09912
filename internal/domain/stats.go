package domain

// AggregateStats is derived from a review sequence on every read.
type AggregateStats struct {
	Count      int     `json:"count"`
	MeanRating float64 `json:"meanRating"`
}

// Aggregate returns the review count and the mean rating rounded half-up to
// one decimal place. The rounding is done on integers so that exact ties
// (4.45, 4.25) are not perturbed by binary float representation.
func Aggregate(reviews []Review) AggregateStats {
	n := len(reviews)
	if n == 0 {
		return AggregateStats{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	// tenths = round(sum*10/n) = floor((20*sum + n) / (2n)) for sum >= 0
	tenths := (20*sum + n) / (2 * n)
	return AggregateStats{Count: n, MeanRating: float64(tenths) / 10}
}
