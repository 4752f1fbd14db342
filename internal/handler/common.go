package handler

import "anoa.com/campusplacement/pkg/validator"

func formatValidationError(err error) string {
	return validator.FormatValidationError(err)
}
