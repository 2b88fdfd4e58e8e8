// Package client is the entry point of the seekd Go SDK. It wraps a
// Transport collaborator with synchronous index operations and an
// asynchronous, cancellable dispatch layer that reports outcomes
// through completion handlers.
package client

import (
	"context"
	"errors"
	"fmt"

	"pkt.systems/pslog"

	"pkt.systems/seekd/api"
	"pkt.systems/seekd/internal/logfields"
	"pkt.systems/seekd/query"
)

// Transport executes the seekd API operations against the service.
// Implementations own HTTP handling, host failover and authentication;
// the SDK core treats each call as a synchronous operation returning a
// decoded result or a domain error (typically *APIError).
type Transport interface {
	// ListIndexes enumerates the application's indexes.
	ListIndexes(ctx context.Context) (*api.ListIndexesResponse, error)
	// DeleteIndex deletes an index.
	DeleteIndex(ctx context.Context, indexName string) (*api.TaskResponse, error)
	// MoveIndex renames src to dst, overwriting dst if it exists.
	MoveIndex(ctx context.Context, src, dst string) (*api.TaskResponse, error)
	// CopyIndex copies src to dst, overwriting dst if it exists.
	CopyIndex(ctx context.Context, src, dst string) (*api.TaskResponse, error)
	// MultiQuery runs several index queries in one call.
	MultiQuery(ctx context.Context, queries []api.IndexQuery, strategy api.MultiQueryStrategy) (*api.MultiQueryResponse, error)
	// Batch sends a cross-index write batch.
	Batch(ctx context.Context, actions []api.BatchAction) (*api.BatchResponse, error)
}

// ErrNilTransport is returned by New when no transport is supplied.
var ErrNilTransport = errors.New("seekd: transport required")

const defaultDeliveryBuffer = 16

// Client wraps a Transport with logging and asynchronous dispatch.
type Client struct {
	transport      Transport
	logger         pslog.Base
	deliveryBuffer int

	dispatcher *dispatcher
}

// Option customises client construction.
type Option func(*Client)

// WithLogger supplies a logger for client diagnostics.
// Passing nil falls back to pslog.NoopLogger().
func WithLogger(logger pslog.Base) Option {
	return func(c *Client) {
		if logger == nil {
			c.logger = pslog.NoopLogger()
			return
		}
		if full, ok := logger.(pslog.Logger); ok {
			c.logger = logfields.WithSubsystem(full, "client.sdk")
			return
		}
		c.logger = logger
	}
}

// WithDeliveryBuffer sets the completion queue depth between the
// background workers and the delivery goroutine. Larger values let
// more commands finish before their handlers have run.
func WithDeliveryBuffer(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.deliveryBuffer = n
		}
	}
}

// New creates a client on top of transport.
//
// Example:
//
//	cli, err := client.New(transport, client.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer cli.Close()
//	req := cli.ListIndexesAsync(ctx, func(resp *api.ListIndexesResponse, err error) { ... })
func New(transport Transport, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}
	c := &Client{
		transport:      transport,
		logger:         pslog.NoopLogger(),
		deliveryBuffer: defaultDeliveryBuffer,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dispatcher = newDispatcher(c, c.deliveryBuffer)
	return c, nil
}

// Close stops the delivery loop. In-flight commands run to completion
// but their handlers are no longer invoked. Close is idempotent.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.dispatcher.stop()
	return nil
}

// NewIndexQuery pairs an index name with the canonical serialization
// of q, ready for MultiQuery.
func NewIndexQuery(indexName string, q *query.Query) api.IndexQuery {
	params := ""
	if q != nil {
		params = q.Build()
	}
	return api.IndexQuery{IndexName: indexName, Params: params}
}

// ----------------------------------------------------------------------
// Synchronous operations. The async entry points in dispatch.go run
// these on background goroutines.
// ----------------------------------------------------------------------

// ListIndexes enumerates the application's indexes.
func (c *Client) ListIndexes(ctx context.Context) (*api.ListIndexesResponse, error) {
	c.logTraceCtx(ctx, "client.list_indexes.start")
	resp, err := c.transport.ListIndexes(ctx)
	if err != nil {
		c.logWarnCtx(ctx, "client.list_indexes.error", "error", err)
		return nil, err
	}
	c.logTraceCtx(ctx, "client.list_indexes.success", "indexes", len(resp.Items))
	return resp, nil
}

// DeleteIndex deletes an index.
func (c *Client) DeleteIndex(ctx context.Context, indexName string) (*api.TaskResponse, error) {
	if indexName == "" {
		return nil, fmt.Errorf("seekd: index name required")
	}
	c.logTraceCtx(ctx, "client.delete_index.start", "index", indexName)
	resp, err := c.transport.DeleteIndex(ctx, indexName)
	if err != nil {
		c.logWarnCtx(ctx, "client.delete_index.error", "index", indexName, "error", err)
		return nil, err
	}
	return resp, nil
}

// MoveIndex renames src to dst. The destination is overwritten when
// it already exists.
func (c *Client) MoveIndex(ctx context.Context, src, dst string) (*api.TaskResponse, error) {
	if src == "" || dst == "" {
		return nil, fmt.Errorf("seekd: source and destination index names required")
	}
	c.logTraceCtx(ctx, "client.move_index.start", "src", src, "dst", dst)
	resp, err := c.transport.MoveIndex(ctx, src, dst)
	if err != nil {
		c.logWarnCtx(ctx, "client.move_index.error", "src", src, "dst", dst, "error", err)
		return nil, err
	}
	return resp, nil
}

// CopyIndex copies src to dst. The destination is overwritten when it
// already exists.
func (c *Client) CopyIndex(ctx context.Context, src, dst string) (*api.TaskResponse, error) {
	if src == "" || dst == "" {
		return nil, fmt.Errorf("seekd: source and destination index names required")
	}
	c.logTraceCtx(ctx, "client.copy_index.start", "src", src, "dst", dst)
	resp, err := c.transport.CopyIndex(ctx, src, dst)
	if err != nil {
		c.logWarnCtx(ctx, "client.copy_index.error", "src", src, "dst", dst, "error", err)
		return nil, err
	}
	return resp, nil
}

// MultiQuery runs several index queries in one call. An empty
// strategy defaults to api.StrategyNone.
func (c *Client) MultiQuery(ctx context.Context, queries []api.IndexQuery, strategy api.MultiQueryStrategy) (*api.MultiQueryResponse, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("seekd: at least one query required")
	}
	if strategy == "" {
		strategy = api.StrategyNone
	}
	c.logTraceCtx(ctx, "client.multi_query.start", "queries", len(queries), "strategy", string(strategy))
	resp, err := c.transport.MultiQuery(ctx, queries, strategy)
	if err != nil {
		c.logWarnCtx(ctx, "client.multi_query.error", "queries", len(queries), "error", err)
		return nil, err
	}
	return resp, nil
}

// Batch sends a cross-index write batch.
func (c *Client) Batch(ctx context.Context, actions []api.BatchAction) (*api.BatchResponse, error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("seekd: at least one action required")
	}
	c.logTraceCtx(ctx, "client.batch.start", "actions", len(actions))
	resp, err := c.transport.Batch(ctx, actions)
	if err != nil {
		c.logWarnCtx(ctx, "client.batch.error", "actions", len(actions), "error", err)
		return nil, err
	}
	return resp, nil
}

// ----------------------------------------------------------------------
// Logging helpers. Correlation IDs carried by ctx are appended as
// "cid" unless the call site already set one.
// ----------------------------------------------------------------------

func hasKey(keyvals []any, target string) bool {
	for i := 0; i+1 < len(keyvals); i += 2 {
		if key, ok := keyvals[i].(string); ok && key == target {
			return true
		}
	}
	return false
}

func (c *Client) enrichKeyvals(ctx context.Context, keyvals []any) []any {
	if ctx == nil {
		return keyvals
	}
	cid := CorrelationIDFromContext(ctx)
	if cid == "" || hasKey(keyvals, "cid") {
		return keyvals
	}
	enriched := append([]any(nil), keyvals...)
	return append(enriched, "cid", cid)
}

func (c *Client) logTraceCtx(ctx context.Context, msg string, keyvals ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Trace(msg, c.enrichKeyvals(ctx, keyvals)...)
}

func (c *Client) logDebugCtx(ctx context.Context, msg string, keyvals ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, c.enrichKeyvals(ctx, keyvals)...)
}

func (c *Client) logWarnCtx(ctx context.Context, msg string, keyvals ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(msg, c.enrichKeyvals(ctx, keyvals)...)
}
