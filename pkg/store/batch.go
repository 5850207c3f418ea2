package store

import (
	"encoding/json"
	"fmt"
)

// BatchRequest groups create, update, and delete operations for one resource
// type into a single call. Empty operation groups are omitted from the wire
// payload.
type BatchRequest[T any] struct {
	Create []T     `json:"create,omitempty" yaml:"create,omitempty"`
	Update []T     `json:"update,omitempty" yaml:"update,omitempty"`
	Delete []int64 `json:"delete,omitempty" yaml:"delete,omitempty"`
}

// Size returns the total number of operations in the request.
func (r *BatchRequest[T]) Size() int {
	return len(r.Create) + len(r.Update) + len(r.Delete)
}

// IsEmpty reports whether the request carries no operations.
func (r *BatchRequest[T]) IsEmpty() bool {
	return r.Size() == 0
}

// BatchResult is the outcome of a single operation inside a batch. Exactly
// one of Resource or Err is meaningful: a failed operation carries the
// server's error object in place of the resource fields.
type BatchResult[T any] struct {
	// ID echoes the identifier of the originating operation. For creates
	// it is the newly assigned identifier on success and zero on failure.
	ID int64

	// Resource is the resulting state of the resource, present on success.
	Resource *T

	// Err is the per-operation failure, nil on success.
	Err *APIError
}

// Succeeded reports whether the operation completed.
func (r *BatchResult[T]) Succeeded() bool {
	return r.Err == nil
}

// UnmarshalJSON probes the item for an embedded error object. The server
// reports per-operation failures in-band as {"id": N, "error": {...}} while
// successes are the full resource representation.
func (r *BatchResult[T]) UnmarshalJSON(data []byte) error {
	var probe struct {
		ID    int64     `json:"id"`
		Error *APIError `json:"error"`
	}

	err := json.Unmarshal(data, &probe)
	if err != nil {
		return fmt.Errorf("decoding batch result: %w", err)
	}

	r.ID = probe.ID

	if probe.Error != nil {
		r.Err = probe.Error
		r.Resource = nil

		return nil
	}

	var resource T

	err = json.Unmarshal(data, &resource)
	if err != nil {
		return fmt.Errorf("decoding batch resource: %w", err)
	}

	r.Resource = &resource

	return nil
}

// MarshalJSON emits the wire form matching UnmarshalJSON.
func (r BatchResult[T]) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		out := struct {
			ID    int64     `json:"id"`
			Error *APIError `json:"error"`
		}{ID: r.ID, Error: r.Err}

		data, err := json.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("encoding batch result: %w", err)
		}

		return data, nil
	}

	data, err := json.Marshal(r.Resource)
	if err != nil {
		return nil, fmt.Errorf("encoding batch resource: %w", err)
	}

	return data, nil
}

// BatchResponse mirrors the request grouping. The call-level error of a batch
// is nil whenever the envelope round-tripped; individual failures live on the
// results and must be inspected by the caller.
type BatchResponse[T any] struct {
	Create []BatchResult[T] `json:"create,omitempty" yaml:"create,omitempty"`
	Update []BatchResult[T] `json:"update,omitempty" yaml:"update,omitempty"`
	Delete []BatchResult[T] `json:"delete,omitempty" yaml:"delete,omitempty"`
}

// Failed collects every failed result across all three groups.
func (r *BatchResponse[T]) Failed() []BatchResult[T] {
	var failed []BatchResult[T]

	for _, group := range [][]BatchResult[T]{r.Create, r.Update, r.Delete} {
		for _, result := range group {
			if !result.Succeeded() {
				failed = append(failed, result)
			}
		}
	}

	return failed
}

// ByID finds the result echoing the given identifier, searching updates and
// deletes. Created resources get server-assigned identifiers and cannot be
// addressed this way.
func (r *BatchResponse[T]) ByID(id int64) (*BatchResult[T], bool) {
	for _, group := range [][]BatchResult[T]{r.Update, r.Delete} {
		for i := range group {
			if group[i].ID == id {
				return &group[i], true
			}
		}
	}

	return nil, false
}

// Missing returns the requested update and delete identifiers that have no
// corresponding result. Callers correlate by identifier, never by position.
func (r *BatchResponse[T]) Missing(req *BatchRequest[T], idOf func(T) int64) []int64 {
	seen := make(map[int64]bool)

	for _, group := range [][]BatchResult[T]{r.Update, r.Delete} {
		for _, result := range group {
			seen[result.ID] = true
		}
	}

	var missing []int64

	for _, item := range req.Update {
		if id := idOf(item); !seen[id] {
			missing = append(missing, id)
		}
	}

	for _, id := range req.Delete {
		if !seen[id] {
			missing = append(missing, id)
		}
	}

	return missing
}
