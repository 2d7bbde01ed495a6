// Package document decodes YAML and JSON record files into generic maps that
// the validator package can check with object schemas.
//
// A stream may hold several YAML documents separated by "---". Each document
// is either a single mapping or a sequence of mappings, and every mapping
// becomes one Record in stream order:
//
//	records, err := document.DecodeFile(ctx, "users.yaml")
//	if err != nil {
//	    return err
//	}
//	for i, rec := range records {
//	    res := schema.Validate(rec)
//	    ...
//	}
//
// Errors wrap ErrDecodeFailed, ErrUnexpectedShape, ErrUnsupportedFormat,
// ErrFailedToReadFile or ErrDecodeCancelled and match with errors.Is.
package document
