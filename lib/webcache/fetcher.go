package webcache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Fetcher layers a small in-memory LRU over the disk cache so one run
// never re-reads (let alone re-fetches) the same page twice. Network
// fetches only happen on a full miss.
type Fetcher struct {
	cache  Cache
	client *resty.Client
	memory *expirable.LRU[string, []byte]
}

const defaultRequestTimeout = time.Second * 20

func NewFetcher(cache Cache, client *resty.Client) *Fetcher {
	if client.GetClient().Timeout == 0 {
		client.SetTimeout(defaultRequestTimeout)
	}
	return &Fetcher{
		cache:  cache,
		client: client,
		memory: expirable.NewLRU[string, []byte](1024, nil, time.Minute*30),
	}
}

// Client exposes the underlying resty client for instrumentation.
func (f *Fetcher) Client() *resty.Client {
	return f.client
}

// Get returns the body for a url, consulting memory, then disk, then
// the network. A non-2xx response is an error: its body is neither
// cached nor returned.
func (f *Fetcher) Get(ctx context.Context, rawUrl string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", rawUrl))

	cached, hit := f.memory.Get(rawUrl)
	if hit {
		span.AddEvent("memory hit")
		return cached, nil
	}

	cached, err := f.cache.Get(ctx, rawUrl)
	if err == nil {
		slog.DebugContext(ctx, "cache hit", "url", rawUrl)
		f.memory.Add(rawUrl, cached)
		return cached, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	slog.DebugContext(ctx, "cache miss, fetching", "url", rawUrl)

	res, err := f.client.R().
		SetContext(ctx).
		Get(rawUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("GET %s: unexpected status %s", rawUrl, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	body := res.Body()
	err = f.cache.Put(ctx, rawUrl, body)
	if err != nil {
		// a broken cache dir shouldn't kill the scrape
		slog.WarnContext(ctx, "failed to cache page", "url", rawUrl, "err", err)
	}
	f.memory.Add(rawUrl, body)

	return body, nil
}
