package service

import (
	"errors"
	"fmt"

	"github.com/GVarya/MA-homework-service/internal/errdefs"
	"github.com/GVarya/MA-homework-service/internal/repository"
)

// notFound turns a storage miss into the domain NotFound kind with a message
// naming the entity. Other errors pass through untouched.
func notFound(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s not found", errdefs.ErrNotFound, entity)
	}
	return err
}
