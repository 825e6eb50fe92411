package sentence

var stopwords = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
}

// Stopwords returns a fresh set of common English function words.
func Stopwords() map[string]struct{} {
	m := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		m[w] = struct{}{}
	}
	return m
}

// IsStopword reports whether the lower-case word is a stopword.
func IsStopword(word string) bool {
	for _, w := range stopwords {
		if w == word {
			return true
		}
	}
	return false
}
