package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/viant/afs"
	"go.uber.org/zap"

	"pdfmanager/internal/domain"
)

var _ domain.Extractor = (*PDFExtractor)(nil)

// PDFExtractor concatenates the plain text of every page, in page order.
type PDFExtractor struct {
	fs     afs.Service
	logger *zap.Logger
}

func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFExtractor{fs: afs.New(), logger: logger}
}

// ExtractFile reads a local path or storage URL and extracts its text.
func (p *PDFExtractor) ExtractFile(ctx context.Context, path string) (string, error) {
	data, err := p.fs.DownloadWithURL(ctx, location(path))
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", domain.ErrUnreadableDocument, path, err)
	}
	return p.Extract(ctx, data)
}

// Extract fails with domain.ErrUnreadableDocument when data is not a parseable PDF.
func (p *PDFExtractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrUnreadableDocument)
	}
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	var out strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			p.logger.Debug("skipping empty page", zap.Int("page", i))
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", domain.ErrUnreadableDocument, i, err)
		}
		out.WriteString(pageText)
	}
	p.logger.Debug("extracted pdf text", zap.Int("pages", pages), zap.Int("chars", out.Len()))
	return out.String(), nil
}
