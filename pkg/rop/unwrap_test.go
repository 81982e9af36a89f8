package rop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropsafe/pkg/rop/optional"
	"github.com/ib-77/ropsafe/pkg/rop/promise"
)

func TestUnwrap(t *testing.T) {
	t.Parallel()

	v, ok := Unwrap(Success("...")).Get()
	assert.True(t, ok)
	assert.Equal(t, "...", v)

	assert.True(t, Unwrap(Fail[string](errors.New("bar"))).Empty())
	assert.True(t, Unwrap(Fail[string](NewVariant("foo", nil))).Empty())
}

func TestUnwrap_ZeroValuesArePresent(t *testing.T) {
	t.Parallel()

	assert.False(t, Unwrap(Success("")).Empty())
	assert.False(t, Unwrap(Success(0)).Empty())
	assert.False(t, Unwrap(Success(Nothing{})).Empty())

	var none *int
	got := Unwrap(Success(none))
	assert.False(t, got.Empty())
	assert.Nil(t, got.Unwrap())
}

func TestUnwrapValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, UnwrapValue(3, nil).Unwrap())
	assert.True(t, UnwrapValue(3, errors.New("bar")).Empty())
}

func TestUnwrapAsync(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	tests := []struct {
		name string
		in   *promise.Promise[Result[string]]
		want optional.Value[string]
	}{
		{"value", promise.Resolve(Success("...")), optional.Some("...")},
		{"empty string", promise.Resolve(Success("")), optional.Some("")},
		{"error", promise.Resolve(Fail[string](errors.New("bar"))), optional.None[string]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := UnwrapAsync(tt.in).Await(ctx)
			require.NoError(t, err)
			require.False(t, s.Rejected)
			if diff := cmp.Diff(tt.want, s.Value, cmp.AllowUnexported(optional.Value[string]{})); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestUnwrapAsync_DoesNotCatchRejection(t *testing.T) {
	t.Parallel()

	s := UnwrapAsync(promise.Reject[Result[int]]("boom")).Wait()

	assert.True(t, s.Rejected)
	assert.Equal(t, "boom", s.Reason)
}

func TestUnwrapAsync_NilPromise(t *testing.T) {
	t.Parallel()

	s := UnwrapAsync[int](nil).Wait()

	assert.True(t, s.Rejected)
	assert.Equal(t, promise.ErrNil, s.Reason)
}
