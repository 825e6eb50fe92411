package rephraser

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	"go.uber.org/zap"

	"pdfmanager/internal/domain"
	"pdfmanager/internal/sentence"
)

var _ domain.Rephraser = (*SynonymRephraser)(nil)

var wordRe = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// SynonymRephraser paraphrases text by swapping words for thesaurus synonyms.
type SynonymRephraser struct {
	thesaurus Thesaurus
	ratio     float64
	maxWords  int
	logger    *zap.Logger
}

// Config controls how many words are replaced: int(Ratio*words), at least
// one and at most MaxWords.
type Config struct {
	Ratio    float64
	MaxWords int
}

func NewSynonymRephraser(thesaurus Thesaurus, cfg Config, logger *zap.Logger) *SynonymRephraser {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Ratio <= 0 {
		cfg.Ratio = 0.3
	}
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = 10
	}
	return &SynonymRephraser{thesaurus: thesaurus, ratio: cfg.Ratio, maxWords: cfg.MaxWords, logger: logger}
}

// Rephrase replaces eligible words left to right until the quota is met.
// A synonym sharing the original word's stem is not a paraphrase and is skipped.
func (r *SynonymRephraser) Rephrase(ctx context.Context, text string) (string, error) {
	spans := wordRe.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return text, nil
	}
	quota := int(r.ratio * float64(len(spans)))
	if quota < 1 {
		quota = 1
	}
	if quota > r.maxWords {
		quota = r.maxWords
	}

	var out strings.Builder
	last, replaced := 0, 0
	for _, span := range spans {
		if replaced >= quota {
			break
		}
		word := text[span[0]:span[1]]
		if utf8.RuneCountInString(word) < 2 || sentence.IsStopword(strings.ToLower(word)) {
			continue
		}
		candidates, err := r.thesaurus.Synonyms(ctx, strings.ToLower(word))
		if err != nil {
			return "", err
		}
		syn, ok := pick(word, candidates)
		if !ok {
			continue
		}
		out.WriteString(text[last:span[0]])
		out.WriteString(syn)
		last = span[1]
		replaced++
	}
	out.WriteString(text[last:])
	r.logger.Debug("rephrased", zap.Int("words", len(spans)), zap.Int("replaced", replaced))
	return out.String(), nil
}

func pick(word string, candidates []string) (string, bool) {
	lower := strings.ToLower(word)
	base := stem(lower)
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || strings.EqualFold(c, lower) || stem(strings.ToLower(c)) == base {
			continue
		}
		return matchCase(word, c), true
	}
	return "", false
}

func stem(word string) string {
	s, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return s
}

func matchCase(original, replacement string) string {
	first, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(first) {
		return replacement
	}
	if strings.ToUpper(original) == original && utf8.RuneCountInString(original) > 1 {
		return strings.ToUpper(replacement)
	}
	r, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(r)) + replacement[size:]
}
