// Package word defines the vocabulary domain types shared across Lexiz.
package word

// ID uniquely identifies a word in the store.
type ID string

// Tier is the adaptive difficulty tier of a word, derived from its
// accumulated score and nudged after every played quiz item.
type Tier string

const (
	// TierNew marks words never practiced.
	TierNew Tier = "new"

	// TierInProgress marks words with some practice history.
	TierInProgress Tier = "in_progress"

	// TierNeedsReview marks words the learner keeps getting wrong.
	// Hard-only sessions draw exclusively from this tier.
	TierNeedsReview Tier = "needs_review"

	// TierMastered marks words answered reliably.
	TierMastered Tier = "mastered"
)

// Word is one vocabulary entry. The quiz engine only reads these fields;
// mutation of the persisted score/tier goes through a DifficultyGateway.
type Word struct {
	ID           ID
	Text         string
	Translation  string
	LanguageCode string
	Tier         Tier
	Score        int
}

// Nudge moves a tier one step in the given direction. A positive delta
// steps toward mastered (lifting needs_review back to in_progress first);
// a negative delta drops straight to needs_review. Zero is the identity.
func Nudge(t Tier, delta int) Tier {
	switch {
	case delta > 0:
		switch t {
		case TierNew:
			return TierInProgress
		case TierNeedsReview:
			return TierInProgress
		case TierInProgress, TierMastered:
			return TierMastered
		}
	case delta < 0:
		return TierNeedsReview
	}
	return t
}

// ValidTier reports whether s names a known tier.
func ValidTier(s string) bool {
	switch Tier(s) {
	case TierNew, TierInProgress, TierNeedsReview, TierMastered:
		return true
	}
	return false
}
