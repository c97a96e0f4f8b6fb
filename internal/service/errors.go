package service

import (
	"errors"
	"fmt"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/util"
)

// asInfrastructure помечает сбой как model.ErrInfrastructure; уже помеченные ошибки
// залогированы хранилищем и повторно не пишутся
func asInfrastructure(operation, principal string, err error) error {
	if errors.Is(err, model.ErrInfrastructure) {
		return fmt.Errorf("%s: %w", operation, err)
	}
	util.LogOperation(operation, principal, err)
	return fmt.Errorf("%w: %s: %w", model.ErrInfrastructure, operation, err)
}
