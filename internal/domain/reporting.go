package domain

import "math"

// AverageRating средняя оценка по записям с отзывами, округленная до 1 знака
// Для пустого набора отзывов определена как 0
func AverageRating(bookings []*Booking) float64 {
	total := 0
	count := 0
	for _, b := range bookings {
		if b.HasReview() {
			total += b.Review.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(count)*10) / 10
}
