// Package request holds helpers shared by the v1 handlers: owner
// resolution from the X-User-ID header and service error mapping.
package request

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// OwnerID parses the X-User-ID header value. Every v1 endpoint is scoped to
// the owner it names; there is no ambient user.
func OwnerID(header string) (uuid.UUID, error) {
	id, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID header", err)
	}
	return id, nil
}

// ServiceError maps service failures onto HTTP status codes. Anything
// unrecognized becomes a 500 with the given message.
func ServiceError(err error, msg string) error {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return huma.NewError(http.StatusUnprocessableEntity, validation.Error())
	}

	var insufficient *service.InsufficientFundsError
	if errors.As(err, &insufficient) {
		return huma.NewError(http.StatusConflict, insufficient.Error())
	}

	var report *service.ReportError
	if errors.As(err, &report) {
		return huma.NewError(http.StatusBadGateway, "report generation failed", report.Err)
	}

	if errors.Is(err, service.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "not found")
	}

	return huma.NewError(http.StatusInternalServerError, msg, err)
}
