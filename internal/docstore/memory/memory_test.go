package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfmanager/internal/domain"
)

func collect(s *Storage) ([]string, []string) {
	var ids, texts []string
	for id, text := range s.All() {
		ids = append(ids, id)
		texts = append(texts, text)
	}
	return ids, texts
}

func TestStorage_UploadGet(t *testing.T) {
	s := NewStorage()
	s.Upload("a.pdf", "alpha")

	text, err := s.Get("a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "alpha", text)

	_, err = s.Get("missing.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorage_Document(t *testing.T) {
	s := NewStorage()
	s.Upload("docs/a.pdf", "alpha")
	s.Upload("docs/a.pdf", "beta")

	doc, err := s.Document("docs/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, domain.Document{ID: "docs/a.pdf", Path: "docs/a.pdf", Content: "beta"}, doc)

	_, err = s.Document("docs/b.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorage_OverwriteKeepsPosition(t *testing.T) {
	s := NewStorage()
	s.Upload("a", "A")
	s.Upload("b", "B")
	s.Upload("a", "A2")

	text, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "A2", text)
	assert.Equal(t, 2, s.Len())

	ids, texts := collect(s)
	assert.Equal(t, []string{"a", "b"}, ids)
	assert.Equal(t, []string{"A2", "B"}, texts)
	assert.Equal(t, []string{"a", "b"}, s.IDs())
}

func TestStorage_AllSnapshot(t *testing.T) {
	s := NewStorage()
	s.Upload("a", "A")
	s.Upload("b", "B")

	var seen []string
	for id := range s.All() {
		seen = append(seen, id)
		s.Upload("c", "C")
	}
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, 3, s.Len())
}

func TestStorage_AllEarlyStop(t *testing.T) {
	s := NewStorage()
	s.Upload("a", "A")
	s.Upload("b", "B")

	var seen []string
	for id := range s.All() {
		seen = append(seen, id)
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}

func TestStorage_ConcurrentUpload(t *testing.T) {
	s := NewStorage()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Upload(fmt.Sprintf("doc-%d", i%10), "text")
			for range s.All() {
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, s.Len())
}
