package summarizer

import (
	"pdfmanager/internal/domain"
	"pdfmanager/internal/sentence"
)

// DefaultSentences is the summary length used when none is configured.
const DefaultSentences = 3

// PositionalSummarizer keeps the leading sentences of a text verbatim.
type PositionalSummarizer struct {
	splitter domain.SentenceSplitter
}

// NewPositionalSummarizer splits on ". " unless another splitter is given.
func NewPositionalSummarizer(splitter domain.SentenceSplitter) *PositionalSummarizer {
	if splitter == nil {
		splitter = sentence.NewDelimiterSplitter(sentence.SummaryDelimiter)
	}
	return &PositionalSummarizer{splitter: splitter}
}

// Summarize joins the first maxSentences sentences and appends a period.
// Empty text or a non-positive count yields ".".
func (s *PositionalSummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		return ".", nil
	}
	sentences := s.splitter.Split(text)
	if maxSentences > len(sentences) {
		maxSentences = len(sentences)
	}
	return s.splitter.Join(sentences[:maxSentences]) + ".", nil
}
