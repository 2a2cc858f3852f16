package bank

// CoverageTag is a content category used to balance topic coverage
// within a session.
type CoverageTag string

const (
	TagConfounding CoverageTag = "confounding"
	TagTemporality CoverageTag = "temporality"
	TagComplexity  CoverageTag = "complexity"
)

// CoverageTargets returns the tags a session should touch at least once,
// in priority order.
func CoverageTargets() []CoverageTag {
	return []CoverageTag{TagConfounding, TagTemporality, TagComplexity}
}

// Item is a single catalog entry. Items are immutable: loaded once at
// startup and never mutated.
type Item struct {
	// ID uniquely identifies the item, e.g. "C2-01".
	ID string

	// Family groups related items by schema family prefix, e.g. "C2.reasons".
	Family string

	// SchemaID keys into the Features catalog.
	SchemaID string

	// Text is the stimulus shown to the user.
	Text string

	// CoverageTag is the content category this item exercises.
	CoverageTag CoverageTag

	// Disc is the discrimination parameter (a). Must be > 0.
	Disc float64

	// Diff is the difficulty parameter (b).
	Diff float64
}

// Features describes the grading template for a schema: which process
// moves an answer must show, how many distinct items a list answer needs,
// and whether a More/Less direction word is expected. All fields optional.
type Features struct {
	RequiredMoves       []string
	ExpectedListCount   int
	ExpectDirectionWord bool
}
