package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stretchr/testify/mock"

	"pdfmanager/internal/domain"
	"pdfmanager/internal/extractor"
)

type MockDictionary struct{ mock.Mock }

func (m *MockDictionary) Define(ctx context.Context, terms []string) (domain.Definitions, error) {
	args := m.Called(ctx, terms)
	defs, _ := args.Get(0).(domain.Definitions)
	return defs, args.Error(1)
}

type MockTranslator struct{ mock.Mock }

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}

type MockRephraser struct{ mock.Mock }

func (m *MockRephraser) Rephrase(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

type MockChatbot struct{ mock.Mock }

func (m *MockChatbot) Respond(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

// fakeScanner serves files from memory; the content doubles as the
// extracted text, unless it starts with "!" which makes extraction fail.
type fakeScanner struct {
	dirs    map[string][]string
	content map[string]string
	listErr error
}

func (f *fakeScanner) List(_ context.Context, dir string) ([]extractor.Source, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []extractor.Source
	for _, name := range f.dirs[dir] {
		out = append(out, extractor.Source{Name: name, Path: dir + "/" + name})
	}
	return out, nil
}

func (f *fakeScanner) Read(_ context.Context, src extractor.Source) ([]byte, error) {
	data, ok := f.content[src.Path]
	if !ok {
		return nil, fmt.Errorf("%w: %s missing", domain.ErrUnreadableDocument, src.Path)
	}
	return []byte(data), nil
}

type fakeExtractor struct{}

func (fakeExtractor) Extract(_ context.Context, data []byte) (string, error) {
	if len(data) > 0 && data[0] == '!' {
		return "", fmt.Errorf("%w: malformed", domain.ErrUnreadableDocument)
	}
	return string(data), nil
}

type failingSummarizer struct{}

func (failingSummarizer) Summarize(string, int) (string, error) {
	return "", errors.New("summarizer exploded")
}
