package order

import "time"

// Review is the customer's feedback attached to a delivered order. Writing
// it again replaces rating, comment and time.
type Review struct {
	rating     int
	comment    string
	reviewedAt time.Time
}

// RestoreReview rebuilds a stored review.
func RestoreReview(rating int, comment string, reviewedAt time.Time) Review {
	return Review{rating: rating, comment: comment, reviewedAt: reviewedAt}
}

func (r Review) Rating() int { return r.rating }

func (r Review) Comment() string { return r.comment }

func (r Review) ReviewedAt() time.Time { return r.reviewedAt }
