package search

import (
	"iter"
	"strings"

	"pdfmanager/internal/domain"
	"pdfmanager/internal/sentence"
)

// Corpus is the read side of the document store the engine scans.
type Corpus interface {
	All() iter.Seq2[string, string]
}

// KeywordSearcher finds sentences containing a query as a case-insensitive
// substring. It does no tokenisation, so "cat" also matches "concatenate".
type KeywordSearcher struct {
	corpus   Corpus
	splitter domain.SentenceSplitter
}

// NewKeywordSearcher splits documents on "." unless another splitter is given.
func NewKeywordSearcher(corpus Corpus, splitter domain.SentenceSplitter) *KeywordSearcher {
	if splitter == nil {
		splitter = sentence.NewDelimiterSplitter(sentence.SearchDelimiter)
	}
	return &KeywordSearcher{corpus: corpus, splitter: splitter}
}

// Search returns, per document in insertion order, the matching sentences
// terminated by "." and joined by a space. Documents without a match are omitted.
func (s *KeywordSearcher) Search(query string) domain.SearchResults {
	q := strings.ToLower(query)
	var out domain.SearchResults
	for id, text := range s.corpus.All() {
		if !strings.Contains(strings.ToLower(text), q) {
			continue
		}
		var matched []string
		for _, frag := range s.splitter.Split(text) {
			if strings.Contains(strings.ToLower(frag), q) {
				matched = append(matched, strings.TrimSpace(frag)+".")
			}
		}
		if len(matched) == 0 {
			continue
		}
		out = append(out, domain.SearchResult{DocumentID: id, Text: strings.Join(matched, " ")})
	}
	return out
}
