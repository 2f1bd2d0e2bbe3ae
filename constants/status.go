package constants

// ExtractionStatus is the canonical pipeline status for rows in extractions.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusToRecognize ExtractionStatus = "TO_RECOGNIZE" // uploaded, awaiting text recognition + confirm
	StatusToExtract   ExtractionStatus = "TO_EXTRACT"   // text confirmed, awaiting classification + structuring
	StatusToVerify    ExtractionStatus = "TO_VERIFY"    // structured draft persisted, awaiting verification
	StatusProcessed   ExtractionStatus = "PROCESSED"    // terminal, typed record committed
)

var allStatuses = []ExtractionStatus{
	StatusToRecognize,
	StatusToExtract,
	StatusToVerify,
	StatusProcessed,
}

// StatusStrings returns the closed status set for schema validation.
func StatusStrings() []string {
	out := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		out[i] = string(s)
	}
	return out
}

// Rank orders statuses by pipeline progress. Unknown statuses rank below
// TO_RECOGNIZE so a corrupted value can never look terminal.
func (s ExtractionStatus) Rank() int {
	switch s {
	case StatusToRecognize:
		return 1
	case StatusToExtract:
		return 2
	case StatusToVerify:
		return 3
	case StatusProcessed:
		return 4
	default:
		return 0
	}
}

// Next returns the status a successful stage transition leads to.
// PROCESSED is terminal and has no successor.
func (s ExtractionStatus) Next() (ExtractionStatus, bool) {
	switch s {
	case StatusToRecognize:
		return StatusToExtract, true
	case StatusToExtract:
		return StatusToVerify, true
	case StatusToVerify:
		return StatusProcessed, true
	default:
		return "", false
	}
}

// CanTransition reports whether from -> to is a legal single step.
// Every transition must be attempted from its declared source state only.
func CanTransition(from, to ExtractionStatus) bool {
	next, ok := from.Next()
	return ok && next == to
}
