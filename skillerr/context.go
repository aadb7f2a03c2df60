package skillerr

import "context"

// contextKey is a private type to avoid collisions with other packages.
type contextKey string

const metadataKey contextKey = "skillerr-metadata"

// MetadataScope holds accumulated metadata for errors raised further down
// the call stack.
type MetadataScope struct {
	fields map[string]any
}

// MetaField represents a single metadata field.
type MetaField struct {
	Key   string
	Value any
}

// Meta creates a metadata field for use with WithMetadata.
func Meta(key string, value any) MetaField {
	return MetaField{Key: key, Value: value}
}

// WithMetadata adds metadata to ctx that is automatically attached to any
// error created with a *Ctx constructor further down the call chain.
// Metadata is inherited and may be overwritten by nested scopes, matching
// how an activation ID and skill ID get threaded from activate() down
// through execute()/cancel() without every call site repeating them.
func WithMetadata(ctx context.Context, fields ...MetaField) context.Context {
	scope := &MetadataScope{fields: make(map[string]any)}

	if parent, ok := ctx.Value(metadataKey).(*MetadataScope); ok && parent != nil {
		for k, v := range parent.fields {
			scope.fields[k] = v
		}
	}
	for _, f := range fields {
		scope.fields[f.Key] = f.Value
	}

	return context.WithValue(ctx, metadataKey, scope)
}

func getMetadata(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	if scope, ok := ctx.Value(metadataKey).(*MetadataScope); ok && scope != nil {
		return scope.fields
	}
	return nil
}

func applyContextMetadata(ctx context.Context, err *Error) *Error {
	if metadata := getMetadata(ctx); metadata != nil {
		for k, v := range metadata {
			if err.Meta == nil {
				err.Meta = make(map[string]any)
			}
			err.Meta[k] = v
		}
	}
	return err
}

// NewCtx creates a new error with code, message, and metadata pulled from ctx.
func NewCtx(ctx context.Context, code Code, message string) *Error {
	return applyContextMetadata(ctx, New(code, message))
}

// NewfCtx creates a new error with a formatted message and metadata from ctx.
func NewfCtx(ctx context.Context, code Code, format string, args ...any) *Error {
	return applyContextMetadata(ctx, Newf(code, format, args...))
}

// WrapCtx wraps err with a code, message, and metadata from ctx.
func WrapCtx(ctx context.Context, err error, code Code, message string) *Error {
	return applyContextMetadata(ctx, Wrap(err, code, message))
}
