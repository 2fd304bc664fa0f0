package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/lexiz/internal/word"
)

// BuildPool filters, shuffles and truncates the candidate words into the
// fixed play order for one session. The returned order is never
// re-shuffled mid-session, so position-based lookahead stays valid.
//
// Hard-only sessions only require one matching word and may come out
// shorter than the preset asks for; normal sessions fail with
// InsufficientItemsError when the filtered pool is too small.
func BuildPool(candidates []word.Word, preset Preset) ([]word.Word, error) {
	var filtered []word.Word
	for _, w := range candidates {
		if preset.Language != "" && w.LanguageCode != preset.Language {
			continue
		}
		if preset.HardOnly && w.Tier != word.TierNeedsReview {
			continue
		}
		filtered = append(filtered, w)
	}

	required := preset.WordCount
	if preset.HardOnly {
		required = 1
	}
	if len(filtered) < required {
		return nil, &InsufficientItemsError{
			Required:  required,
			Available: len(filtered),
		}
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	if len(filtered) > preset.WordCount {
		filtered = filtered[:preset.WordCount]
	}
	return filtered, nil
}
