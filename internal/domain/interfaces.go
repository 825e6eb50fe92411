package domain

import (
	"context"
	"iter"
)

// Document represents a single PDF loaded into the system. ID is the
// file path it was loaded from.
type Document struct {
	ID      string
	Path    string
	Content string
}

// SearchResult holds every matching sentence of one document, joined by a space.
type SearchResult struct {
	DocumentID string
	Text       string
}

// SearchResults is ordered by document insertion order.
type SearchResults []SearchResult

// AsMap returns the results keyed by document ID.
func (r SearchResults) AsMap() map[string]string {
	out := make(map[string]string, len(r))
	for _, res := range r {
		out[res.DocumentID] = res.Text
	}
	return out
}

// Definitions maps a requested term to its definition text.
type Definitions map[string]string

// NoDefinition is the value stored for a term the dictionary does not know.
const NoDefinition = "No definition found"

// FileSummary is the summary produced for one uploaded file.
type FileSummary struct {
	FileName string
	Path     string
	Summary  string
}

// SkippedFile records a file that could not be ingested.
type SkippedFile struct {
	FileName string
	Err      error
}

// UploadReport is the outcome of one upload-and-summarize pass.
type UploadReport struct {
	Summaries []FileSummary
	Skipped   []SkippedFile
}

// Adapter names used as keys in Explanation.Errors.
const (
	AdapterDictionary = "dictionary"
	AdapterRephraser  = "rephraser"
	AdapterTranslator = "translator"
	AdapterChat       = "chat"
)

// Explanation is everything the system knows about a term.
// When Matches is empty, Definitions holds the dictionary fallback. Both
// are empty if the dictionary is not configured or its lookup failed.
type Explanation struct {
	Term         string
	Matches      SearchResults
	Definitions  Definitions
	Rephrase     string
	Translation  string
	ChatResponse string
	// Errors is keyed by adapter name.
	Errors map[string]error
}

// SentenceSplitter splits text into sentences and joins them back.
type SentenceSplitter interface {
	Split(text string) []string
	Join(sentences []string) string
}

// DocumentStore holds the corpus.
type DocumentStore interface {
	Upload(id, text string)
	Document(id string) (Document, error)
	Get(id string) (string, error)
	All() iter.Seq2[string, string]
	IDs() []string
	Len() int
}

// Extractor converts raw PDF bytes into plain text.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// Searcher finds matching sentences across the corpus.
type Searcher interface {
	Search(query string) SearchResults
}

// Dictionary resolves terms to definitions.
type Dictionary interface {
	Define(ctx context.Context, terms []string) (Definitions, error)
}

// Translator translates text between two language codes.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Rephraser paraphrases text.
type Rephraser interface {
	Rephrase(ctx context.Context, text string) (string, error)
}

// Chatbot returns a conversational response to a message.
type Chatbot interface {
	Respond(ctx context.Context, message string) (string, error)
}

// PDFService defines the operations exposed by the application core.
type PDFService interface {
	UploadAndSummarize(ctx context.Context, dir string) (*UploadReport, error)
	Explain(ctx context.Context, term string) (*Explanation, error)
}
