package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoFieldsToUpdate = errors.New("no updatable fields provided")
)
