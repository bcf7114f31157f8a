package transport

import (
	"errors"
	"net/http"

	"stockroom/internal/domain"
	"stockroom/internal/middleware"
)

// respondDomainError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a storage failure and surfaces as a 500
// without leaking driver details.
func respondDomainError(w http.ResponseWriter, err error) {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		middleware.RespondWithError(w, http.StatusConflict, stockErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, domain.ErrDuplicateCode),
		errors.Is(err, domain.ErrProductHasSales):
		middleware.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNegativeStock):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
