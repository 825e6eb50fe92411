package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	"pdfmanager/internal/domain"
)

// FileSystem abstracts listing and downloading objects so that local
// folders and remote buckets are handled alike.
type FileSystem interface {
	Object(ctx context.Context, location string) (storage.Object, error)
	List(ctx context.Context, location string) ([]storage.Object, error)
	Download(ctx context.Context, object storage.Object) ([]byte, error)
}

type afsFileSystem struct {
	svc afs.Service
}

// NewAFS constructs a FileSystem backed by the default AFS service.
func NewAFS() FileSystem {
	return &afsFileSystem{svc: afs.New()}
}

func (a *afsFileSystem) Object(ctx context.Context, location string) (storage.Object, error) {
	return a.svc.Object(ctx, location)
}

func (a *afsFileSystem) List(ctx context.Context, location string) ([]storage.Object, error) {
	return a.svc.List(ctx, location)
}

func (a *afsFileSystem) Download(ctx context.Context, object storage.Object) ([]byte, error) {
	return a.svc.Download(ctx, object)
}

// Source is one candidate document found in a directory.
type Source struct {
	Name   string
	Path   string
	object storage.Object
}

// Scanner finds documents with a given extension directly inside a directory.
type Scanner struct {
	fs              FileSystem
	extension       string
	caseInsensitive bool
}

// NewScanner matches the extension case-sensitively unless caseInsensitive is set.
func NewScanner(fs FileSystem, extension string, caseInsensitive bool) *Scanner {
	if fs == nil {
		fs = NewAFS()
	}
	if extension == "" {
		extension = ".pdf"
	}
	return &Scanner{fs: fs, extension: extension, caseInsensitive: caseInsensitive}
}

// List returns matching files sorted by name. Subdirectories are not visited.
// dir must be a directory; a file path fails with domain.ErrInvalidInput.
func (s *Scanner) List(ctx context.Context, dir string) ([]Source, error) {
	loc := location(dir)
	root, err := s.fs.Object(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrUnreadableDocument, dir, err)
	}
	if !root.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}
	objects, err := s.fs.List(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrUnreadableDocument, dir, err)
	}
	var sources []Source
	for _, object := range objects {
		if object.IsDir() || !s.matches(object.Name()) {
			continue
		}
		sources = append(sources, Source{
			Name:   object.Name(),
			Path:   join(dir, object.Name()),
			object: object,
		})
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })
	return sources, nil
}

// Read downloads the raw bytes of a listed source.
func (s *Scanner) Read(ctx context.Context, src Source) ([]byte, error) {
	data, err := s.fs.Download(ctx, src.object)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrUnreadableDocument, src.Path, err)
	}
	return data, nil
}

func (s *Scanner) matches(name string) bool {
	if s.caseInsensitive {
		return strings.HasSuffix(strings.ToLower(name), strings.ToLower(s.extension))
	}
	return strings.HasSuffix(name, s.extension)
}

func location(dir string) string {
	if url.Scheme(dir, "") != "" {
		return dir
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return url.ToFileURL(dir)
}

func join(dir, name string) string {
	if url.Scheme(dir, "") != "" {
		return url.Join(dir, name)
	}
	return filepath.Join(dir, name)
}
