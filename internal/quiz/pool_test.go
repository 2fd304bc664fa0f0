package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/lexiz/internal/word"
)

func poolWords(n int, lang string, tier word.Tier) []word.Word {
	words := make([]word.Word, n)
	for i := range words {
		words[i] = word.Word{
			ID:           word.ID(fmt.Sprintf("%s-w%d", lang, i)),
			Text:         fmt.Sprintf("Wort%d", i),
			Translation:  fmt.Sprintf("word%d", i),
			LanguageCode: lang,
			Tier:         tier,
		}
	}
	return words
}

func TestBuildPoolShufflesAndTruncates(t *testing.T) {
	candidates := poolWords(10, "de", word.TierNew)

	pool, err := BuildPool(candidates, Preset{WordCount: 5, Mode: ModeChoice})
	if err != nil {
		t.Fatalf("BuildPool: %v", err)
	}
	if len(pool) != 5 {
		t.Fatalf("pool size = %d, want 5", len(pool))
	}
	seen := map[word.ID]bool{}
	for _, w := range pool {
		if seen[w.ID] {
			t.Errorf("duplicate word %s in pool", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestBuildPoolInsufficientWords(t *testing.T) {
	candidates := poolWords(3, "de", word.TierNew)

	_, err := BuildPool(candidates, Preset{WordCount: 5, Mode: ModeChoice})
	var insufficient *InsufficientItemsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientItemsError", err)
	}
	if insufficient.Required != 5 || insufficient.Available != 3 {
		t.Errorf("got required=%d available=%d, want 5/3", insufficient.Required, insufficient.Available)
	}
}

func TestBuildPoolLanguageFilter(t *testing.T) {
	candidates := append(poolWords(4, "de", word.TierNew), poolWords(4, "fr", word.TierNew)...)

	pool, err := BuildPool(candidates, Preset{WordCount: 4, Language: "fr", Mode: ModeChoice})
	if err != nil {
		t.Fatalf("BuildPool: %v", err)
	}
	for _, w := range pool {
		if w.LanguageCode != "fr" {
			t.Errorf("word %s has language %s, want fr", w.ID, w.LanguageCode)
		}
	}
}

func TestBuildPoolHardOnly(t *testing.T) {
	candidates := append(poolWords(6, "de", word.TierMastered), poolWords(2, "de", word.TierNeedsReview)...)

	// Hard-only pools may come out shorter than the preset asks for.
	pool, err := BuildPool(candidates, Preset{WordCount: 5, HardOnly: true, Mode: ModeSpelling})
	if err != nil {
		t.Fatalf("BuildPool: %v", err)
	}
	if len(pool) != 2 {
		t.Fatalf("pool size = %d, want 2", len(pool))
	}
	for _, w := range pool {
		if w.Tier != word.TierNeedsReview {
			t.Errorf("word %s has tier %s, want needs_review", w.ID, w.Tier)
		}
	}
}

func TestBuildPoolHardOnlyEmpty(t *testing.T) {
	candidates := poolWords(6, "de", word.TierMastered)

	_, err := BuildPool(candidates, Preset{WordCount: 5, HardOnly: true, Mode: ModeSpelling})
	var insufficient *InsufficientItemsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientItemsError", err)
	}
	if insufficient.Required != 1 || insufficient.Available != 0 {
		t.Errorf("got required=%d available=%d, want 1/0", insufficient.Required, insufficient.Available)
	}
}
