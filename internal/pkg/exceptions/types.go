package exceptions

import (
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrReadBody = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadRequestBody)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrStoreNotConnected = func() *CustomError {
		return WrapWithoutError(constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBStoreNotConnected)
	}
)
