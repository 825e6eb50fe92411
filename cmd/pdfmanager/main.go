package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pdfmanager/internal/adapters/chat"
	"pdfmanager/internal/adapters/dictionary"
	"pdfmanager/internal/adapters/httpjson"
	"pdfmanager/internal/adapters/rephraser"
	"pdfmanager/internal/adapters/translator"
	"pdfmanager/internal/config"
	"pdfmanager/internal/docstore/memory"
	"pdfmanager/internal/domain"
	"pdfmanager/internal/extractor"
	"pdfmanager/internal/logging"
	"pdfmanager/internal/search"
	"pdfmanager/internal/sentence"
	"pdfmanager/internal/service"
	"pdfmanager/internal/summarizer"
	"pdfmanager/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath     string
		explainTerm string
		headless    bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/pdfmanager/config.yaml if not provided)")
	flag.StringVar(&explainTerm, "explain", "", "Explain a term after loading the folders and exit")
	flag.BoolVar(&headless, "summarize-only", false, "Print the folder summaries and exit without starting the TUI")
	flag.Parse()
	dirs := flag.Args()
	if (headless || explainTerm != "") && len(dirs) == 0 {
		fmt.Println("Usage: pdfmanager [--config=config.yaml] [--summarize-only | --explain=term] folder [folder ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, err := buildService(cfg, logger)
	if err != nil {
		logger.Fatal("failed to assemble service", zap.Error(err))
	}

	report := &domain.UploadReport{}
	for _, dir := range dirs {
		r, err := svc.UploadAndSummarize(ctx, dir)
		if err != nil {
			if r != nil && len(r.Summaries) > 0 {
				fmt.Println(tui.RenderReport(r))
			}
			logger.Error("upload failed", zap.String("dir", dir), zap.Error(err))
			fmt.Fprintf(os.Stderr, "upload %s: %v\n", dir, err)
			os.Exit(1)
		}
		report.Summaries = append(report.Summaries, r.Summaries...)
		report.Skipped = append(report.Skipped, r.Skipped...)
	}

	switch {
	case explainTerm != "":
		exp, err := svc.Explain(ctx, explainTerm)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(tui.RenderExplanation(exp))
		return
	case headless:
		fmt.Println(tui.RenderReport(report))
		return
	}

	var content string
	if len(dirs) > 0 {
		content = tui.RenderReport(report)
	}
	m := tui.New(ctx, svc, content)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logger.Error("tui exited", zap.Error(err))
		log.Fatal(err)
	}
}

func buildService(cfg *config.AppConfig, logger *zap.Logger) (*service.PDFServiceImpl, error) {
	scanner := extractor.NewScanner(extractor.NewAFS(), cfg.Ingest.Extension, cfg.Ingest.CaseInsensitiveExt)
	store := memory.NewStorage()

	var sum domain.Summarizer
	splitter := sentence.NewDelimiterSplitter(sentence.SummaryDelimiter)
	switch cfg.Summarizer.Type {
	case "positional", "":
		sum = summarizer.NewPositionalSummarizer(splitter)
	case "frequency":
		sum = summarizer.NewFrequencySummarizer(splitter)
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	searcher := search.NewKeywordSearcher(store, sentence.NewDelimiterSplitter(sentence.SearchDelimiter))

	breaker := httpjson.BreakerConfig{
		MaxRequests:         cfg.Breaker.MaxRequests,
		Interval:            seconds(cfg.Breaker.IntervalSecs),
		Timeout:             seconds(cfg.Breaker.OpenSecs),
		ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
	}
	transport := func(name string, timeoutSecs int) httpjson.Config {
		return httpjson.Config{Name: name, Timeout: seconds(timeoutSecs), Breaker: breaker}
	}

	thesaurus := rephraser.NewDatamuse(rephraser.DatamuseConfig{
		BaseURL:     cfg.Rephraser.BaseURL,
		MaxSynonyms: cfg.Rephraser.MaxSynonyms,
		Transport:   transport(domain.AdapterRephraser, cfg.Rephraser.TimeoutSecs),
	}, logger)

	adapters := service.Adapters{
		Dictionary: dictionary.NewClient(dictionary.Config{
			BaseURL:   cfg.Dictionary.BaseURL,
			Transport: transport(domain.AdapterDictionary, cfg.Dictionary.TimeoutSecs),
		}, logger),
		Translator: translator.NewMyMemory(translator.Config{
			BaseURL:   cfg.Translator.BaseURL,
			EmailEnv:  cfg.Translator.EmailEnv,
			Transport: transport(domain.AdapterTranslator, cfg.Translator.TimeoutSecs),
		}, logger),
		Rephraser: rephraser.NewSynonymRephraser(thesaurus, rephraser.Config{
			Ratio:    cfg.Rephraser.Ratio,
			MaxWords: cfg.Rephraser.MaxWords,
		}, logger),
		Chatbot: chat.NewRasa(chat.Config{
			URL:       cfg.Chat.URL,
			Sender:    cfg.Chat.Sender,
			Transport: transport(domain.AdapterChat, cfg.Chat.TimeoutSecs),
		}, logger),
	}

	return service.NewPDFService(
		scanner,
		extractor.NewPDFExtractor(logger),
		store,
		sum,
		searcher,
		adapters,
		service.Options{
			SummarySentences: cfg.Summarizer.Sentences,
			SourceLang:       cfg.Translator.SourceLang,
			TargetLang:       cfg.Translator.TargetLang,
			SkipUnreadable:   cfg.Ingest.SkipUnreadable,
			MaxParallel:      cfg.Explain.MaxParallel,
		},
		logger,
	), nil
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }
