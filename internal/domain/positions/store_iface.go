package positions

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Position, error)
	Get(ctx context.Context, id string) (Position, error)
	Create(ctx context.Context, p Position) (Position, error)
	Update(ctx context.Context, id string, p Position) (Position, error)
	Delete(ctx context.Context, id string) error
}

// Headcounter reports how many employees hold each position.
type Headcounter interface {
	CountByPosition(ctx context.Context) (map[string]int, error)
}
