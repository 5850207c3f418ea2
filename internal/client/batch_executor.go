package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/storekit-io/wcapi/internal/constants"
	"github.com/storekit-io/wcapi/pkg/store"
)

// BatchCaller is the slice of a resource client the executor needs.
type BatchCaller[T any] interface {
	Batch(ctx context.Context, request *store.BatchRequest[T]) (*store.BatchResponse[T], error)
}

// BatchOutcome is the result of one executed batch call. ID identifies the
// call, not any resource inside it.
type BatchOutcome[T any] struct {
	ID       string
	Response *store.BatchResponse[T]
	Err      error
}

// SplitBatchRequest chunks an oversized request into requests the server
// will accept. Operation order is preserved within each group.
func SplitBatchRequest[T any](request *store.BatchRequest[T], chunkSize int) []*store.BatchRequest[T] {
	if chunkSize <= 0 {
		chunkSize = constants.MaxBatchItems
	}

	if request.Size() <= chunkSize {
		return []*store.BatchRequest[T]{request}
	}

	var chunks []*store.BatchRequest[T]

	current := &store.BatchRequest[T]{}

	flush := func() {
		if !current.IsEmpty() {
			chunks = append(chunks, current)
			current = &store.BatchRequest[T]{}
		}
	}

	for _, item := range request.Create {
		current.Create = append(current.Create, item)
		if current.Size() >= chunkSize {
			flush()
		}
	}

	for _, item := range request.Update {
		current.Update = append(current.Update, item)
		if current.Size() >= chunkSize {
			flush()
		}
	}

	for _, id := range request.Delete {
		current.Delete = append(current.Delete, id)
		if current.Size() >= chunkSize {
			flush()
		}
	}

	flush()

	return chunks
}

// ExecuteBatches runs several batch calls with bounded concurrency and
// returns one outcome per request, in request order. A failed call carries
// its error in the outcome; the other calls still run.
func ExecuteBatches[T any](ctx context.Context, caller BatchCaller[T], requests []*store.BatchRequest[T], concurrency int) []BatchOutcome[T] {
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	outcomes := make([]BatchOutcome[T], len(requests))
	semaphore := make(chan struct{}, concurrency)

	var wg sync.WaitGroup

	for i, request := range requests {
		outcomes[i].ID = uuid.NewString()

		wg.Add(1)

		go func(i int, request *store.BatchRequest[T]) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			response, err := caller.Batch(ctx, request)
			outcomes[i].Response = response
			outcomes[i].Err = err
		}(i, request)
	}

	wg.Wait()

	return outcomes
}
