package registry

import (
	"context"
	"fmt"
	"reflect"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying r.
func NewContext[C any](ctx context.Context, r *Registry[C]) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the registry stored in ctx, if any.
func FromContext[C any](ctx context.Context) (*Registry[C], bool) {
	r, ok := ctx.Value(contextKey{}).(*Registry[C])
	return r, ok && r != nil
}

// MustFromContext is FromContext for callers that can only run inside a
// scope set up by NewContext. It panics when the registry is missing.
func MustFromContext[C any](ctx context.Context) *Registry[C] {
	r, ok := FromContext[C](ctx)
	if !ok {
		panic(fmt.Sprintf("registry: no *Registry[%v] in context; wrap the caller with registry.NewContext", reflect.TypeFor[C]()))
	}
	return r
}
