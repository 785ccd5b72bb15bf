package review

// EligibilityFacts is what the store knows about a customer and a book.
type EligibilityFacts struct {
	HasQualifyingTransaction bool
	AlreadyReviewed          bool
}

// CheckEligibility: one review per customer and book, and only after a
// transaction for that book that was not cancelled.
func CheckEligibility(f EligibilityFacts) error {
	if f.AlreadyReviewed {
		return ErrAlreadyReviewed
	}
	if !f.HasQualifyingTransaction {
		return ErrNotEligible
	}
	return nil
}
