package recipes

import (
	"errors"
	"fmt"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/repository"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)

// translateStoreError maps store failures that are the caller's fault onto the engine taxonomy.
// NotFound is left to the call sites, which know which entity was missing.
func translateStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, repository.ErrInvalidReference), errors.Is(err, repository.ErrInvalidValue):
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	default:
		return err
	}
}
