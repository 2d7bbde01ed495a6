package document

import "errors"

var (
	ErrDecodeCancelled   = errors.New("document decoding cancelled")
	ErrDecodeFailed      = errors.New("failed to decode document")
	ErrUnexpectedShape   = errors.New("document is not a mapping or a sequence of mappings")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrFailedToReadFile  = errors.New("failed to read document file")
)
