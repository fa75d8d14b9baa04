package errors_test

import (
	stderrors "errors"
	"testing"

	codecerr "github.com/jinhibi13-pixel/soundscript/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodecErrorWithMessage(t *testing.T) {
	newErr := codecerr.ErrMalformedHeader.WithMessage("only 2 of 4 symbols")
	assert.Equal(
		t,
		"length header is truncated or invalid: only 2 of 4 symbols",
		newErr.Error(),
		"error message is wrong")
	assert.ErrorIs(t, newErr, codecerr.ErrMalformedHeader)
}

func TestCodecErrorWrap(t *testing.T) {
	originalErr := stderrors.New("original error")
	newErr := codecerr.ErrOutOfRangeSymbol.Wrap(originalErr)
	expectedMessage := "character outside the encoding range: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(
		t, newErr, codecerr.ErrOutOfRangeSymbol, "codec error not set as parent")
}

func TestCodecErrorKindsAreDistinct(t *testing.T) {
	kinds := []codecerr.CodecError{
		codecerr.ErrEmptyInput,
		codecerr.ErrMalformedHeader,
		codecerr.ErrOutOfRangeSymbol,
		codecerr.ErrTruncatedBody,
		codecerr.ErrLengthMismatch,
		codecerr.ErrLengthOverflow,
	}

	for i, kind := range kinds {
		for j, other := range kinds {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, kind, other, "kinds %d and %d alias each other", i, j)
		}
	}
}
