package store

import (
	"context"
	"time"

	"github.com/abhisek/lexiz/internal/word"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures aggregate vocabulary progress at a point in time.
type SnapshotData struct {
	Version    int            `json:"version"`
	TotalWords int            `json:"total_words"`
	TierCounts map[string]int `json:"tier_counts"`
}

// Snapshot represents a point-in-time capture of vocabulary progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// WordRecord is one persisted vocabulary entry.
type WordRecord struct {
	ID           int
	WordID       string
	Text         string
	Translation  string
	LanguageCode string
	Tier         string
	Score        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WordRepo manages the vocabulary table. It also serves the quiz engine:
// FetchCandidates and ApplyDelta satisfy its word-source and
// difficulty-gateway contracts.
type WordRepo interface {
	// Add inserts one word. Duplicate (text, language) pairs are rejected.
	Add(ctx context.Context, text, translation, languageCode string) (*WordRecord, error)

	// List returns all words, optionally filtered by language.
	List(ctx context.Context, languageCode string) ([]WordRecord, error)

	// FetchCandidates returns the quizzable snapshot for a language
	// (all languages when empty).
	FetchCandidates(ctx context.Context, languageCode string) ([]word.Word, error)

	// ApplyDelta adds scoreDelta to one word's raw score and nudges its
	// tier by tierDelta.
	ApplyDelta(ctx context.Context, id word.ID, scoreDelta, tierDelta int) error

	// TierCounts returns per-tier word counts and the total.
	TierCounts(ctx context.Context) (map[string]int, int, error)
}

// SessionEventData captures one finished or abandoned session.
type SessionEventData struct {
	SessionID      string
	QuizType       string
	Score          int
	CorrectAnswers int
	TotalPlayed    int
	DurationSecs   float64
	Accuracy       float64
	PracticedIDs   []string
	CorrectIDs     []string
}

// AnswerEventData captures one settled word.
type AnswerEventData struct {
	SessionID      string
	WordID         string
	QuizType       string
	Outcome        string
	Attempts       int
	LearnerAnswer  string
	ExpectedAnswer string
	ScoreDelta     int
}

// AppEventData captures a free-form analytics event.
type AppEventData struct {
	Name   string
	Params map[string]any
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummaryRecord is a persisted session event.
type SessionSummaryRecord struct {
	ID             int
	Sequence       int64
	Timestamp      time.Time
	SessionID      string
	QuizType       string
	Score          int
	CorrectAnswers int
	TotalPlayed    int
	DurationSecs   float64
	Accuracy       float64
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates token usage per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session summary.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one settled word.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendAppEvent records a free-form analytics event.
	AppendAppEvent(ctx context.Context, data AppEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionSummaries returns session events, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
