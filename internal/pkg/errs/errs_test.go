package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"orderdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("deliveryId", "123")

		assert.Equal(t, "deliveryId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("deliveryId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: deliveryId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("deliveryType")

		assert.Equal(t, "deliveryType", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: deliveryType", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown delivery type")
		err := errs.NewValueIsInvalidErrorWithCause("deliveryType", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: deliveryType (cause: unknown delivery type)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("batchSize", 0, 1, 1000)

		assert.Equal(t, "batchSize", err.ParamName)
		assert.Equal(t, 0, err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is batchSize, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("status")

	assert.Equal(t, "status", err.ParamName)
	assert.Equal(t, "value is required: status", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("status", errors.New("blank"))
	assert.Equal(t, "value is required: status (cause: blank)", withCause.Error())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("taxId", "12345678900")
	assert.Equal(t, "conflict: taxId 12345678900", err.Error())
	require.ErrorIs(t, err, errs.ErrConflict)

	withCause := errs.NewConflictErrorWithCause("taxId", "1", errors.New("duplicate key"))
	assert.Equal(t, "conflict: taxId 1 (cause: duplicate key)", withCause.Error())
	require.ErrorIs(t, withCause, errs.ErrConflict)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewPersistenceErrorWithCause("place order", cause)

	assert.Equal(t, "persistence failure: place order (cause: connection reset)", err.Error())
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, cause)

	bare := errs.NewPersistenceError("commit")
	assert.Equal(t, "persistence failure: commit", bare.Error())
	require.ErrorIs(t, bare, errs.ErrPersistence)
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind errs.Kind
	}{
		{"nil", nil, errs.KindUnknown},
		{"plain", errors.New("boom"), errs.KindUnknown},
		{"required", errs.NewValueIsRequiredError("x"), errs.KindValidation},
		{"invalid", errs.NewValueIsInvalidError("x"), errs.KindValidation},
		{"out of range", errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.KindValidation},
		{"not found", errs.NewObjectNotFoundError("x", 1), errs.KindNotFound},
		{"conflict", errs.NewConflictError("x", 1), errs.KindConflict},
		{"persistence", errs.NewPersistenceError("x"), errs.KindPersistence},
		{"wrapped", fmt.Errorf("handler: %w", errs.NewObjectNotFoundError("x", 1)), errs.KindNotFound},
		{
			"joined validation",
			errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsInvalidError("b")),
			errs.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, errs.KindOf(tc.err))
		})
	}
}

func TestWrapPersistence(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errs.WrapPersistence("op", nil))
	})

	t.Run("unclassified error is wrapped", func(t *testing.T) {
		cause := errors.New("commit error")
		err := errs.WrapPersistence("commit", cause)
		require.ErrorIs(t, err, errs.ErrPersistence)
		require.ErrorIs(t, err, cause)
	})

	t.Run("classified error passes through", func(t *testing.T) {
		notFound := errs.NewObjectNotFoundError("client", "1")
		err := errs.WrapPersistence("load client", notFound)
		assert.Same(t, notFound, err)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "validation", errs.KindValidation.String())
	assert.Equal(t, "not_found", errs.KindNotFound.String())
	assert.Equal(t, "conflict", errs.KindConflict.String())
	assert.Equal(t, "persistence", errs.KindPersistence.String())
	assert.Equal(t, "unknown", errs.KindUnknown.String())
}
