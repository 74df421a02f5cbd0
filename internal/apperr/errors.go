package apperr

import "errors"

var (
	// ErrVaultRoot means the vault root is unset, missing, or not a
	// directory. Fatal for every vault operation.
	ErrVaultRoot = errors.New("vault root not configured")

	// ErrParse means a single document's front matter is malformed.
	// Rebuilds skip the offending document and continue.
	ErrParse = errors.New("front matter parse error")

	// ErrNotFound means a lookup matched no document.
	ErrNotFound = errors.New("not found")

	// ErrNoChoice means a reference was ambiguous and no chooser was
	// available (or the choice was declined).
	ErrNoChoice = errors.New("no selection made")
)
