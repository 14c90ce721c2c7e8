package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-builder/builder"
)

var stray *int

type withEmbedded struct {
	mutableFileKey
	Note string
}

func TestField(t *testing.T) {
	b := builder.New[mutableFileKey]()
	builder.Field(b, func(k *mutableFileKey) **int { return &k.AccountID }, ptr(5))
	builder.Field(b, func(k *mutableFileKey) *string { return &k.Label }, "first")
	builder.Field(b, func(k *mutableFileKey) *string { return &k.Label }, "second")

	got, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, got.AccountID)
	assert.Equal(t, 5, *got.AccountID)
	assert.Equal(t, "first", got.Label)
}

func TestGetter(t *testing.T) {
	src := newImmutableFileKey(ptr(123), &createTime)

	b := builder.From(src)
	builder.Getter(b, (*immutableFileKey).AccountID, ptr(234))

	got, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 234, *got.AccountID())
	assert.Same(t, src.CreateTime(), got.CreateTime())
}

func TestGetter_SetterBackedProperty(t *testing.T) {
	b := builder.New[account]()
	builder.Getter(b, (*account).Owner, "ada")

	got, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Owner())
}

func TestField_InvalidExpression(t *testing.T) {
	tests := []struct {
		name  string
		apply func(b *builder.Builder[withEmbedded])
	}{
		{"outside the instance", func(b *builder.Builder[withEmbedded]) {
			builder.Field(b, func(*withEmbedded) **int { return &stray }, nil)
		}},
		{"promoted field", func(b *builder.Builder[withEmbedded]) {
			builder.Field(b, func(k *withEmbedded) *string { return &k.Label }, "x")
		}},
		{"embedded field", func(b *builder.Builder[withEmbedded]) {
			builder.Field(b, func(k *withEmbedded) *mutableFileKey { return &k.mutableFileKey }, mutableFileKey{})
		}},
		{"nil result", func(b *builder.Builder[withEmbedded]) {
			builder.Field(b, func(*withEmbedded) *string { return nil }, "x")
		}},
		{"nil accessor", func(b *builder.Builder[withEmbedded]) {
			builder.Field[withEmbedded, string](b, nil, "x")
		}},
		{"panicking accessor", func(b *builder.Builder[withEmbedded]) {
			builder.Field(b, func(k *withEmbedded) *int { return &(*k.AccountID) }, 1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.New[withEmbedded]()
			tt.apply(b)

			require.ErrorIs(t, b.Err(), builder.ErrInvalidExpression)

			_, err := b.Build()
			require.ErrorIs(t, err, builder.ErrInvalidExpression)
		})
	}
}

func TestGetter_InvalidExpression(t *testing.T) {
	b := builder.New[immutableFileKey]()
	builder.Getter(b, func(k *immutableFileKey) *int { return k.AccountID() }, ptr(1))

	require.ErrorIs(t, b.Err(), builder.ErrInvalidExpression)

	var exprErr *builder.InvalidExpressionError
	require.ErrorAs(t, b.Err(), &exprErr)
}

func TestAccessorFunc_NotSupported(t *testing.T) {
	b := builder.New[mutableFileKey]()
	builder.FieldFunc(b, func(k *mutableFileKey) *string { return &k.Label }, func() string { return "x" })
	require.ErrorIs(t, b.Err(), builder.ErrNotSupported)

	k := builder.New[immutableFileKey]()
	builder.GetterFunc(k, (*immutableFileKey).AccountID, func() *int { return ptr(1) })
	require.ErrorIs(t, k.Err(), builder.ErrNotSupported)

	_, err := k.Build()
	require.ErrorIs(t, err, builder.ErrNotSupported)
}
