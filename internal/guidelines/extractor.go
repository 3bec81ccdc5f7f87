package guidelines

import "strings"

// maximum number of guidelines kept per document; bounds both storage
// and downstream LLM payload size
const MaxGuidelines = 100

// minimum trimmed line length for a guideline candidate
const minLineLength = 8

// Extractor turns a text blob into an ordered list of candidate guideline
// strings. Implementations must be deterministic and order-preserving.
type Extractor interface {
	Extract(text string) []string
}

// policy-indicating keywords; a line qualifies if it contains any of them
// case-insensitively
var keywords = []string{"must", "should", "required", "ensure", "mandatory", "not allowed"}

// KeywordExtractor scans lines for policy-indicating keywords. It is a
// stand-in for real NLP behind the Extractor interface.
type KeywordExtractor struct{}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

func (e *KeywordExtractor) Extract(text string) []string {
	var out []string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= minLineLength {
			continue
		}

		if !containsKeyword(trimmed) {
			continue
		}

		out = append(out, trimmed)
		if len(out) == MaxGuidelines {
			break
		}
	}

	return out
}

func containsKeyword(line string) bool {
	lower := strings.ToLower(line)

	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}

	return false
}
