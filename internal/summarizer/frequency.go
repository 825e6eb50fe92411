package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"pdfmanager/internal/domain"
	"pdfmanager/internal/sentence"
)

// FrequencySummarizer ranks sentences by word frequency (stopwords filtered).
// Selected sentences keep their original order and the same ". " framing
// as the positional summarizer.
type FrequencySummarizer struct {
	splitter     domain.SentenceSplitter
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
func NewFrequencySummarizer(splitter domain.SentenceSplitter) *FrequencySummarizer {
	if splitter == nil {
		splitter = sentence.NewDelimiterSplitter(sentence.SummaryDelimiter)
	}
	return &FrequencySummarizer{
		splitter:     splitter,
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    sentence.Stopwords(),
	}
}

// Summarize returns the maxSentences highest scoring sentences.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		return ".", nil
	}
	sentences := s.splitter.Split(text)
	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, tok := range s.tokens(sent) {
			if _, ok := s.stopwords[tok]; ok {
				continue
			}
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}
	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(sentences))
	for i, sent := range sentences {
		toks := s.tokens(sent)
		sscore := 0.0
		for _, tok := range toks {
			sscore += freq[tok]
		}
		// Normalize by sentence length to avoid bias
		if l := float64(len(toks)); l > 0 {
			sscore /= math.Sqrt(l)
		}
		scores[i] = pair{i, sscore}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)
	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, strings.TrimSuffix(sentences[idx], "."))
	}
	return s.splitter.Join(out) + ".", nil
}

func (s *FrequencySummarizer) tokens(text string) []string {
	return s.tokenPattern.FindAllString(strings.ToLower(text), -1)
}
