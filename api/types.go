// Package api holds the wire-level request and response types of the
// seekd HTTP API, shared by the SDK client and transport
// implementations.
package api

import "encoding/json"

// IndexInfo describes one index as reported by the list-indexes call.
type IndexInfo struct {
	// Name is the index name.
	Name string `json:"name"`
	// Entries is the number of records in the index.
	Entries int64 `json:"entries"`
	// DataSize is the size of the index data in bytes.
	DataSize int64 `json:"dataSize"`
	// CreatedAt is the index creation time in RFC 3339 form.
	CreatedAt string `json:"createdAt,omitempty"`
	// UpdatedAt is the last build time in RFC 3339 form.
	UpdatedAt string `json:"updatedAt,omitempty"`
	// PendingTask reports whether the index has an indexing task running.
	PendingTask bool `json:"pendingTask,omitempty"`
}

// ListIndexesResponse enumerates the application's indexes.
type ListIndexesResponse struct {
	// Items lists the indexes.
	Items []IndexInfo `json:"items"`
}

// TaskResponse acknowledges an index mutation (delete, move, copy)
// that the server executes as a background task.
type TaskResponse struct {
	// TaskID identifies the server-side task spawned by the mutation.
	TaskID int64 `json:"taskID"`
	// IndexName is the index the task operates on.
	IndexName string `json:"indexName,omitempty"`
	// At is the server timestamp for the mutation in RFC 3339 form.
	At string `json:"at,omitempty"`
}

// IndexQuery pairs an index name with canonically serialized search
// parameters for the multi-query call.
type IndexQuery struct {
	// IndexName is the index to search.
	IndexName string `json:"indexName"`
	// Params is the canonical URL-encoded parameter string built by
	// the query package.
	Params string `json:"params"`
}

// MultiQueryStrategy controls how the server walks the query list.
type MultiQueryStrategy string

const (
	// StrategyNone executes every query of the batch.
	StrategyNone MultiQueryStrategy = "none"
	// StrategyStopIfEnoughMatches skips remaining queries once earlier
	// ones returned enough hits.
	StrategyStopIfEnoughMatches MultiQueryStrategy = "stopIfEnoughMatches"
)

// SearchResult is one index's result within a multi-query response.
type SearchResult struct {
	// Index is the index this result belongs to.
	Index string `json:"index"`
	// Hits carries the raw hit objects. Their shape is record-defined,
	// so the SDK leaves them undecoded.
	Hits json.RawMessage `json:"hits"`
	// NbHits is the total number of matching records.
	NbHits int64 `json:"nbHits"`
	// Page is the zero-based page returned.
	Page int `json:"page"`
	// NbPages is the number of available pages.
	NbPages int `json:"nbPages"`
	// HitsPerPage is the page size used.
	HitsPerPage int `json:"hitsPerPage"`
	// ProcessingTimeMS is the server-side processing time.
	ProcessingTimeMS int64 `json:"processingTimeMS"`
	// Query echoes the full-text query.
	Query string `json:"query,omitempty"`
	// Params echoes the canonical parameter string.
	Params string `json:"params,omitempty"`
}

// MultiQueryResponse aggregates the per-index results of one
// multi-query call, in request order.
type MultiQueryResponse struct {
	// Results holds one entry per submitted IndexQuery.
	Results []SearchResult `json:"results"`
}

// BatchAction is one entry of a cross-index batch request.
type BatchAction struct {
	// Action names the operation (addObject, updateObject,
	// partialUpdateObject, deleteObject, ...).
	Action string `json:"action"`
	// IndexName is the index the action applies to.
	IndexName string `json:"indexName"`
	// Body is the raw JSON payload of the action.
	Body json.RawMessage `json:"body,omitempty"`
}

// BatchResponse acknowledges a batch request.
type BatchResponse struct {
	// TaskID maps each touched index to the task spawned for it.
	TaskID map[string]int64 `json:"taskID"`
	// ObjectIDs lists the object identifiers affected, in action order.
	ObjectIDs []string `json:"objectIDs,omitempty"`
}

// ErrorResponse is the canonical error envelope for API errors.
type ErrorResponse struct {
	// Message is the human-readable server diagnostic.
	Message string `json:"message"`
	// Status is the HTTP status echoed in the body, when present.
	Status int `json:"status,omitempty"`
}
