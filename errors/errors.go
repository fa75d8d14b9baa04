package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is the failure type returned by every decode operation (and the
// one encode-side guard). Callers can match the sentinel kinds below with
// [errors.Is] or attach context with WithMessage/Wrap.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseCodecError string

const rootError = baseCodecError("")

// ErrEmptyInput indicates a zero-character encoded document. An empty *byte
// buffer* is not an error; it encodes to a header for length 0 and decodes
// back to an empty buffer.
var ErrEmptyInput = rootError.WithMessage("encoded document is empty")

// ErrMalformedHeader indicates the document ended before the fixed-size
// length header was complete.
var ErrMalformedHeader = rootError.WithMessage("length header is truncated or invalid")

// ErrOutOfRangeSymbol indicates a character that doesn't map into the
// accepted private-use subrange, or a symbol value in the reserved
// extension space.
var ErrOutOfRangeSymbol = rootError.WithMessage("character outside the encoding range")

// ErrTruncatedBody indicates a run-control symbol whose payload symbols are
// missing from the end of the document.
var ErrTruncatedBody = rootError.WithMessage("encoded body is truncated")

// ErrLengthMismatch indicates the reconstructed payload size disagrees with
// the header. A single corrupted character is enough to cause this.
var ErrLengthMismatch = rootError.WithMessage("decoded length disagrees with header")

// ErrLengthOverflow indicates a payload too large for the 48-bit header.
var ErrLengthOverflow = rootError.WithMessage("payload length exceeds header capacity")

func (e baseCodecError) Error() string {
	return string(e)
}

func (e baseCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a
// string describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
