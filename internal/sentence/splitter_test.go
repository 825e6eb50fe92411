package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelimiterSplitter_Split(t *testing.T) {
	testCases := []struct {
		name      string
		delimiter string
		text      string
		want      []string
	}{
		{"Summary", SummaryDelimiter, "A. B. C. D.", []string{"A", "B", "C", "D."}},
		{"Search", SearchDelimiter, "The cat sat. The dog ran.", []string{"The cat sat", " The dog ran", ""}},
		{"Empty", SummaryDelimiter, "", []string{""}},
		{"Decimals", SearchDelimiter, "Pi is 3.14", []string{"Pi is 3", "14"}},
		{"DefaultDelimiter", "", "x. y", []string{"x", "y"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewDelimiterSplitter(tc.delimiter)
			assert.Equal(t, tc.want, s.Split(tc.text))
		})
	}
}

func TestDelimiterSplitter_Join(t *testing.T) {
	s := NewDelimiterSplitter(SummaryDelimiter)
	assert.Equal(t, ". ", s.Delimiter())
	assert.Equal(t, "A. B", s.Join([]string{"A", "B"}))
	assert.Equal(t, "", s.Join(nil))
}
