package request

import (
	"context"
)

type key int

const (
	ownerKey key = iota
)

type ContextX struct {
	context.Context
}

// NewContext context extension
func NewContext(ctx context.Context) ContextX {
	return ContextX{
		Context: ctx,
	}
}

// WithOwner context with the calling account
func (c ContextX) WithOwner(owner string) context.Context {
	return context.WithValue(c, ownerKey, owner)
}

// GetOwner get the calling account from context
func (c ContextX) GetOwner() (string, bool) {
	owner, ok := c.Value(ownerKey).(string)
	return owner, ok && owner != ""
}
