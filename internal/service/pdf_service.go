package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pdfmanager/internal/domain"
	"pdfmanager/internal/extractor"
)

var _ domain.PDFService = (*PDFServiceImpl)(nil)

// Scanner lists and reads candidate documents in a directory.
type Scanner interface {
	List(ctx context.Context, dir string) ([]extractor.Source, error)
	Read(ctx context.Context, src extractor.Source) ([]byte, error)
}

// Adapters are the external capabilities consulted by Explain.
// A nil adapter is skipped.
type Adapters struct {
	Dictionary domain.Dictionary
	Translator domain.Translator
	Rephraser  domain.Rephraser
	Chatbot    domain.Chatbot
}

// Options tunes the service behaviour.
type Options struct {
	SummarySentences int
	SourceLang       string
	TargetLang       string
	// SkipUnreadable isolates extraction failures per file. When false the
	// first failure aborts the upload pass.
	SkipUnreadable bool
	// MaxParallel bounds the Explain fan-out; 1 runs the adapters in sequence.
	MaxParallel int
}

type PDFServiceImpl struct {
	scanner    Scanner
	extractor  domain.Extractor
	store      domain.DocumentStore
	summarizer domain.Summarizer
	searcher   domain.Searcher
	adapters   Adapters
	opts       Options
	logger     *zap.Logger
}

func NewPDFService(scanner Scanner, extractor domain.Extractor, store domain.DocumentStore, summarizer domain.Summarizer, searcher domain.Searcher, adapters Adapters, opts Options, logger *zap.Logger) *PDFServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SummarySentences == 0 {
		opts.SummarySentences = 3
	}
	if opts.SourceLang == "" {
		opts.SourceLang = "en"
	}
	if opts.TargetLang == "" {
		opts.TargetLang = "pt"
	}
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = 1
	}
	return &PDFServiceImpl{
		scanner:    scanner,
		extractor:  extractor,
		store:      store,
		summarizer: summarizer,
		searcher:   searcher,
		adapters:   adapters,
		opts:       opts,
		logger:     logger,
	}
}

// UploadAndSummarize loads every matching file in dir into the store and
// summarizes it. On an aborting failure the report of the files processed so
// far is returned along with the error; those documents stay stored.
func (s *PDFServiceImpl) UploadAndSummarize(ctx context.Context, dir string) (*domain.UploadReport, error) {
	sources, err := s.scanner.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	s.logger.Info("uploading directory", zap.String("dir", dir), zap.Int("files", len(sources)))

	report := &domain.UploadReport{}
	for _, src := range sources {
		text, err := s.load(ctx, src)
		if err != nil {
			if s.opts.SkipUnreadable && errors.Is(err, domain.ErrUnreadableDocument) {
				s.logger.Warn("skipping unreadable document", zap.String("path", src.Path), zap.Error(err))
				report.Skipped = append(report.Skipped, domain.SkippedFile{FileName: src.Name, Err: err})
				continue
			}
			return report, fmt.Errorf("upload %s: %w", src.Name, err)
		}
		s.store.Upload(src.Path, text)

		summary, err := s.summarizer.Summarize(text, s.opts.SummarySentences)
		if err != nil {
			return report, fmt.Errorf("summarize %s: %w", src.Name, err)
		}
		report.Summaries = append(report.Summaries, domain.FileSummary{
			FileName: src.Name,
			Path:     src.Path,
			Summary:  summary,
		})
		s.logger.Debug("document uploaded", zap.String("path", src.Path), zap.Int("chars", len(text)))
	}
	return report, nil
}

func (s *PDFServiceImpl) load(ctx context.Context, src extractor.Source) (string, error) {
	data, err := s.scanner.Read(ctx, src)
	if err != nil {
		return "", err
	}
	return s.extractor.Extract(ctx, data)
}

// Summary re-summarizes a stored document.
func (s *PDFServiceImpl) Summary(id string) (string, error) {
	text, err := s.store.Get(id)
	if err != nil {
		return "", err
	}
	return s.summarizer.Summarize(text, s.opts.SummarySentences)
}

// Documents returns the stored document IDs in insertion order.
func (s *PDFServiceImpl) Documents() []string {
	return s.store.IDs()
}

// Explain runs four independent lookups for term: corpus search with a
// dictionary fallback, paraphrase, translation and chat. A failing adapter
// is recorded in Explanation.Errors and does not affect the others.
func (s *PDFServiceImpl) Explain(ctx context.Context, term string) (*domain.Explanation, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: empty term", domain.ErrInvalidInput)
	}
	exp := &domain.Explanation{Term: term}
	var dictErr, rephraseErr, translateErr, chatErr error

	g := new(errgroup.Group)
	g.SetLimit(s.opts.MaxParallel)
	g.Go(func() error {
		exp.Matches = s.searcher.Search(term)
		if len(exp.Matches) > 0 || s.adapters.Dictionary == nil {
			return nil
		}
		exp.Definitions, dictErr = s.adapters.Dictionary.Define(ctx, []string{term})
		return nil
	})
	if s.adapters.Rephraser != nil {
		g.Go(func() error {
			exp.Rephrase, rephraseErr = s.adapters.Rephraser.Rephrase(ctx, term)
			return nil
		})
	}
	if s.adapters.Translator != nil {
		g.Go(func() error {
			exp.Translation, translateErr = s.adapters.Translator.Translate(ctx, term, s.opts.SourceLang, s.opts.TargetLang)
			return nil
		})
	}
	if s.adapters.Chatbot != nil {
		g.Go(func() error {
			exp.ChatResponse, chatErr = s.adapters.Chatbot.Respond(ctx, term)
			return nil
		})
	}
	_ = g.Wait()

	for name, err := range map[string]error{
		domain.AdapterDictionary: dictErr,
		domain.AdapterRephraser:  rephraseErr,
		domain.AdapterTranslator: translateErr,
		domain.AdapterChat:       chatErr,
	} {
		if err == nil {
			continue
		}
		if exp.Errors == nil {
			exp.Errors = make(map[string]error)
		}
		exp.Errors[name] = err
		s.logger.Warn("adapter failed", zap.String("adapter", name), zap.String("term", term), zap.Error(err))
	}
	s.logger.Info("explained term",
		zap.String("term", term),
		zap.Int("matches", len(exp.Matches)),
		zap.Int("failures", len(exp.Errors)))
	return exp, nil
}
