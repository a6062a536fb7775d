package audit

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, e Event) error
	Count(ctx context.Context, filter Filter) (int, error)
	List(ctx context.Context, filter Filter, includeDetails bool, limit, offset int) ([]Event, error)
}

// Recorder is the write side used by request handlers.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}
