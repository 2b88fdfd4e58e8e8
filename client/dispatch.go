package client

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"

	"pkt.systems/seekd/api"
)

// Method tags the operation a dispatched command performs.
type Method int

const (
	// MethodListIndexes tags asynchronous ListIndexes commands.
	MethodListIndexes Method = iota
	// MethodDeleteIndex tags asynchronous DeleteIndex commands.
	MethodDeleteIndex
	// MethodMoveIndex tags asynchronous MoveIndex commands.
	MethodMoveIndex
	// MethodCopyIndex tags asynchronous CopyIndex commands.
	MethodCopyIndex
	// MethodMultiQuery tags asynchronous MultiQuery commands.
	MethodMultiQuery
	// MethodBatch tags asynchronous Batch commands.
	MethodBatch
)

func (m Method) String() string {
	switch m {
	case MethodListIndexes:
		return "list-indexes"
	case MethodDeleteIndex:
		return "delete-index"
	case MethodMoveIndex:
		return "move-index"
	case MethodCopyIndex:
		return "copy-index"
	case MethodMultiQuery:
		return "multi-query"
	case MethodBatch:
		return "batch"
	default:
		return "unknown"
	}
}

// Request is the caller-held handle for one dispatched command.
type Request struct {
	id        string
	method    Method
	cancelled atomic.Bool
	done      chan struct{}
	doneOnce  sync.Once
}

// ID returns the operation identifier used in log entries.
func (r *Request) ID() string { return r.id }

// Method returns the operation tag.
func (r *Request) Method() Method { return r.method }

// Cancel suppresses the completion handler. When the background
// operation has not started yet it never will; when it is already
// running it runs to completion but nothing is delivered. Cancel is
// best effort: a handler already executing is not interrupted.
func (r *Request) Cancel() { r.cancelled.Store(true) }

// Cancelled reports whether Cancel was called.
func (r *Request) Cancelled() bool { return r.cancelled.Load() }

// Done returns a channel closed once the command is settled: its
// handler returned, or delivery was suppressed by cancellation or
// client shutdown.
func (r *Request) Done() <-chan struct{} { return r.done }

func (r *Request) finish() {
	r.doneOnce.Do(func() { close(r.done) })
}

// command carries one operation through the dispatch state machine.
// Exactly one of result/err is populated once the operation finishes.
type command struct {
	req      *Request
	ctx      context.Context
	invoke   func(context.Context) (any, error)
	complete func(any, error)
	result   any
	err      error
}

// dispatcher runs commands on per-command goroutines and funnels
// their completions through a single delivery goroutine, so handlers
// for the same client never run concurrently and fire in completion
// order.
type dispatcher struct {
	client      *Client
	completions chan *command
	closed      chan struct{}
	closeOnce   sync.Once
}

func newDispatcher(c *Client, buffer int) *dispatcher {
	d := &dispatcher{
		client:      c,
		completions: make(chan *command, buffer),
		closed:      make(chan struct{}),
	}
	go d.deliveryLoop()
	return d
}

func (d *dispatcher) stop() {
	d.closeOnce.Do(func() { close(d.closed) })
}

func (d *dispatcher) stopped() bool {
	select {
	case <-d.closed:
		return true
	default:
		return false
	}
}

// dispatch schedules invoke on a fresh goroutine and returns the
// cancellation handle immediately. Failures surface through complete,
// never here.
func (d *dispatcher) dispatch(ctx context.Context, method Method, invoke func(context.Context) (any, error), complete func(any, error)) *Request {
	req := &Request{
		id:     xid.New().String(),
		method: method,
		done:   make(chan struct{}),
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ensureCorrelationID(ctx)
	if complete == nil {
		complete = func(any, error) {}
	}
	cmd := &command{req: req, ctx: ctx, invoke: invoke, complete: complete}
	if d.stopped() {
		d.client.logDebugCtx(ctx, "client.dispatch.rejected_closed", "op", req.id, "method", method.String())
		req.finish()
		return req
	}
	d.client.logDebugCtx(ctx, "client.dispatch.scheduled", "op", req.id, "method", method.String())
	go d.run(cmd)
	return req
}

func (d *dispatcher) run(cmd *command) {
	req := cmd.req
	if req.Cancelled() {
		d.client.logDebugCtx(cmd.ctx, "client.dispatch.cancelled_before_start", "op", req.id)
		req.finish()
		return
	}
	result, err := cmd.invoke(cmd.ctx)
	if err != nil {
		cmd.err = err
	} else {
		cmd.result = result
	}
	select {
	case d.completions <- cmd:
		// The loop may have stopped after the buffered send landed;
		// settle the request here so Done never hangs. finish is
		// idempotent, racing with the drain below is harmless.
		if d.stopped() {
			req.finish()
		}
	case <-d.closed:
		req.finish()
	}
}

func (d *dispatcher) deliveryLoop() {
	for {
		select {
		case cmd := <-d.completions:
			d.deliver(cmd)
		case <-d.closed:
			d.drain()
			return
		}
	}
}

func (d *dispatcher) deliver(cmd *command) {
	if !cmd.req.Cancelled() {
		cmd.complete(cmd.result, cmd.err)
	} else {
		d.client.logDebugCtx(cmd.ctx, "client.dispatch.delivery_suppressed", "op", cmd.req.id)
	}
	cmd.req.finish()
}

// drain settles completions that were already queued when the client
// closed. Their handlers never run; only their Done channels close.
func (d *dispatcher) drain() {
	for {
		select {
		case cmd := <-d.completions:
			cmd.req.finish()
		default:
			return
		}
	}
}

// ----------------------------------------------------------------------
// Asynchronous entry points, one per method tag. Each returns its
// cancellation handle synchronously; the outcome, result or domain
// error but never both, reaches the handler on the delivery
// goroutine.
// ----------------------------------------------------------------------

// ListIndexesAsync enumerates indexes in the background.
func (c *Client) ListIndexesAsync(ctx context.Context, handler func(*api.ListIndexesResponse, error)) *Request {
	return c.dispatcher.dispatch(ctx, MethodListIndexes,
		func(ctx context.Context) (any, error) {
			return c.ListIndexes(ctx)
		},
		func(result any, err error) {
			if handler == nil {
				return
			}
			if err != nil {
				handler(nil, err)
				return
			}
			handler(result.(*api.ListIndexesResponse), nil)
		})
}

// DeleteIndexAsync deletes an index in the background.
func (c *Client) DeleteIndexAsync(ctx context.Context, indexName string, handler func(*api.TaskResponse, error)) *Request {
	return c.dispatcher.dispatch(ctx, MethodDeleteIndex,
		func(ctx context.Context) (any, error) {
			return c.DeleteIndex(ctx, indexName)
		},
		taskHandler(handler))
}

// MoveIndexAsync renames src to dst in the background.
func (c *Client) MoveIndexAsync(ctx context.Context, src, dst string, handler func(*api.TaskResponse, error)) *Request {
	return c.dispatcher.dispatch(ctx, MethodMoveIndex,
		func(ctx context.Context) (any, error) {
			return c.MoveIndex(ctx, src, dst)
		},
		taskHandler(handler))
}

// CopyIndexAsync copies src to dst in the background.
func (c *Client) CopyIndexAsync(ctx context.Context, src, dst string, handler func(*api.TaskResponse, error)) *Request {
	return c.dispatcher.dispatch(ctx, MethodCopyIndex,
		func(ctx context.Context) (any, error) {
			return c.CopyIndex(ctx, src, dst)
		},
		taskHandler(handler))
}

// MultiQueryAsync runs several index queries in the background.
func (c *Client) MultiQueryAsync(ctx context.Context, queries []api.IndexQuery, strategy api.MultiQueryStrategy, handler func(*api.MultiQueryResponse, error)) *Request {
	return c.dispatcher.dispatch(ctx, MethodMultiQuery,
		func(ctx context.Context) (any, error) {
			return c.MultiQuery(ctx, queries, strategy)
		},
		func(result any, err error) {
			if handler == nil {
				return
			}
			if err != nil {
				handler(nil, err)
				return
			}
			handler(result.(*api.MultiQueryResponse), nil)
		})
}

// BatchAsync sends a cross-index write batch in the background.
func (c *Client) BatchAsync(ctx context.Context, actions []api.BatchAction, handler func(*api.BatchResponse, error)) *Request {
	return c.dispatcher.dispatch(ctx, MethodBatch,
		func(ctx context.Context) (any, error) {
			return c.Batch(ctx, actions)
		},
		func(result any, err error) {
			if handler == nil {
				return
			}
			if err != nil {
				handler(nil, err)
				return
			}
			handler(result.(*api.BatchResponse), nil)
		})
}

func taskHandler(handler func(*api.TaskResponse, error)) func(any, error) {
	return func(result any, err error) {
		if handler == nil {
			return
		}
		if err != nil {
			handler(nil, err)
			return
		}
		handler(result.(*api.TaskResponse), nil)
	}
}
