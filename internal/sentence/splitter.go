package sentence

import "strings"

const (
	// SummaryDelimiter separates sentences when summarizing.
	SummaryDelimiter = ". "
	// SearchDelimiter separates sentences when searching.
	SearchDelimiter = "."
)

// DelimiterSplitter splits text on a literal delimiter. It is purely
// syntactic: abbreviations and decimals are split too.
type DelimiterSplitter struct {
	delimiter string
}

// NewDelimiterSplitter returns a splitter for the given delimiter, falling back to ". ".
func NewDelimiterSplitter(delimiter string) *DelimiterSplitter {
	if delimiter == "" {
		delimiter = SummaryDelimiter
	}
	return &DelimiterSplitter{delimiter: delimiter}
}

// Split never returns an empty slice: empty text yields a single empty sentence.
func (s *DelimiterSplitter) Split(text string) []string {
	return strings.Split(text, s.delimiter)
}

func (s *DelimiterSplitter) Join(sentences []string) string {
	return strings.Join(sentences, s.delimiter)
}

// Delimiter reports the literal boundary used by the splitter.
func (s *DelimiterSplitter) Delimiter() string { return s.delimiter }
