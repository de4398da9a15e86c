package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleFillPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleFillPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			throwf(DegenerateInput, "kaboom %d!", 7)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "degenerate input: kaboom 7!")
		var tessErr *Error
		assert.ErrorAs(t, err, &tessErr)
		assert.Equal(t, DegenerateInput, tessErr.Kind)
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		assert.NoError(t, testFn(false, false))
	})
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "degenerate input", DegenerateInput.String())
	assert.Equal(t, "invariant violation", InvariantViolation.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
