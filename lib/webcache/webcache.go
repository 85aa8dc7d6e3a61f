package webcache

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("prereqmap.lib.webcache")

// Cache is an on-disk page cache laid out as a mirror of the urls it
// holds: `<root>/<host>/<path>.html`. The layout is deliberately
// transparent so a cached run can be inspected (or pages hand-edited)
// with nothing more than a file browser. There is no expiry; delete
// the tree to refetch.
type Cache struct {
	Root string
}

func New(root string) (Cache, error) {
	err := os.MkdirAll(root, 0777)
	if err != nil {
		return Cache{}, err
	}
	return Cache{Root: root}, nil
}

// Path maps a url to its backing file. The query string, when present,
// is folded into the filename so distinct query pages don't collide.
func (c Cache) Path(rawUrl string) (string, error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("cache keys must be absolute urls: %q", rawUrl)
	}

	p := strings.Trim(u.EscapedPath(), "/")
	if p == "" {
		p = "index"
	}
	if u.RawQuery != "" {
		p = p + "_" + url.PathEscape(u.RawQuery)
	}
	if !strings.HasSuffix(p, ".html") {
		p = p + ".html"
	}

	return filepath.Join(c.Root, u.Host, filepath.FromSlash(p)), nil
}

// Get returns the cached body for a url, or os.ErrNotExist when the
// page has never been fetched.
func (c Cache) Get(ctx context.Context, rawUrl string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	path, err := c.Path(rawUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to derive cache path")
		return nil, err
	}
	span.SetAttributes(attribute.String("cache_path", path))

	body, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read cached page")
		return nil, err
	}

	span.AddEvent("cache hit")
	return body, nil
}

func (c Cache) Put(ctx context.Context, rawUrl string, body []byte) error {
	ctx, span := tracer.Start(ctx, "Put")
	defer span.End()

	path, err := c.Path(rawUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to derive cache path")
		return err
	}
	span.SetAttributes(attribute.String("cache_path", path))

	err = os.MkdirAll(filepath.Dir(path), 0777)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache directory")
		return err
	}

	err = os.WriteFile(path, body, 0600)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write cached page")
		return err
	}

	return nil
}
