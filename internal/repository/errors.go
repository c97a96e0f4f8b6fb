package repository

import (
	"fmt"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/util"
)

// infrastructureError логирует сбой хранилища и помечает его как model.ErrInfrastructure
func infrastructureError(operation, principal string, err error) error {
	util.LogOperation(operation, principal, err)
	return fmt.Errorf("%w: %s: %w", model.ErrInfrastructure, operation, err)
}
