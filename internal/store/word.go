package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/ent"
	entword "github.com/abhisek/lexiz/ent/word"
	"github.com/abhisek/lexiz/internal/word"
)

// wordRepo implements WordRepo using the ent client.
type wordRepo struct {
	client *ent.Client
}

func (r *wordRepo) Add(ctx context.Context, text, translation, languageCode string) (*WordRecord, error) {
	w, err := r.client.Word.Create().
		SetWordID(uuid.New().String()).
		SetText(text).
		SetTranslation(translation).
		SetLanguageCode(languageCode).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("word %q (%s) already exists", text, languageCode)
		}
		return nil, fmt.Errorf("save word: %w", err)
	}
	rec := entWordToRecord(w)
	return &rec, nil
}

func (r *wordRepo) List(ctx context.Context, languageCode string) ([]WordRecord, error) {
	q := r.client.Word.Query().Order(ent.Asc(entword.FieldText))
	if languageCode != "" {
		q = q.Where(entword.LanguageCode(languageCode))
	}
	words, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}

	records := make([]WordRecord, 0, len(words))
	for _, w := range words {
		records = append(records, entWordToRecord(w))
	}
	return records, nil
}

func (r *wordRepo) FetchCandidates(ctx context.Context, languageCode string) ([]word.Word, error) {
	q := r.client.Word.Query()
	if languageCode != "" {
		q = q.Where(entword.LanguageCode(languageCode))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	candidates := make([]word.Word, 0, len(rows))
	for _, w := range rows {
		candidates = append(candidates, word.Word{
			ID:           word.ID(w.WordID),
			Text:         w.Text,
			Translation:  w.Translation,
			LanguageCode: w.LanguageCode,
			Tier:         word.Tier(w.Tier),
			Score:        w.Score,
		})
	}
	return candidates, nil
}

func (r *wordRepo) ApplyDelta(ctx context.Context, id word.ID, scoreDelta, tierDelta int) error {
	w, err := r.client.Word.Query().
		Where(entword.WordID(string(id))).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load word %s: %w", id, err)
	}

	newTier := word.Nudge(word.Tier(w.Tier), tierDelta)
	_, err = w.Update().
		SetScore(w.Score + scoreDelta).
		SetTier(string(newTier)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update word %s: %w", id, err)
	}
	return nil
}

func (r *wordRepo) TierCounts(ctx context.Context) (map[string]int, int, error) {
	rows, err := r.client.Word.Query().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query words: %w", err)
	}

	counts := make(map[string]int)
	for _, w := range rows {
		counts[w.Tier]++
	}
	return counts, len(rows), nil
}

func entWordToRecord(w *ent.Word) WordRecord {
	return WordRecord{
		ID:           w.ID,
		WordID:       w.WordID,
		Text:         w.Text,
		Translation:  w.Translation,
		LanguageCode: w.LanguageCode,
		Tier:         w.Tier,
		Score:        w.Score,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}
