package editor

import "context"

// StoreFuncs adapts plain functions to the Store interface, so a screen can
// bind an entity service without declaring a new type.
type StoreFuncs[T any] struct {
	ListFn   func(ctx context.Context) ([]T, error)
	InsertFn func(ctx context.Context, fields T) (T, error)
	UpdateFn func(ctx context.Context, id string, fields T) (T, error)
	DeleteFn func(ctx context.Context, id string) error
}

var _ Store[struct{}] = StoreFuncs[struct{}]{}

func (s StoreFuncs[T]) List(ctx context.Context) ([]T, error) {
	return s.ListFn(ctx)
}

func (s StoreFuncs[T]) Insert(ctx context.Context, fields T) (T, error) {
	return s.InsertFn(ctx, fields)
}

func (s StoreFuncs[T]) Update(ctx context.Context, id string, fields T) (T, error) {
	return s.UpdateFn(ctx, id, fields)
}

func (s StoreFuncs[T]) Delete(ctx context.Context, id string) error {
	return s.DeleteFn(ctx, id)
}
