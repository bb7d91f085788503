package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"

	apperrors "github.com/clinicore/doctor-chatbot/pkg/errors"
)

// pq error classes that indicate a fault worth retrying: connection
// exceptions, insufficient resources, operator intervention.
var transientPQClasses = map[string]struct{}{
	"08": {},
	"53": {},
	"57": {},
}

// classifyStoreError wraps a store failure as transient or internal.
// Transient errors are the only ones the retrieval executor retries.
func classifyStoreError(op string, err error) error {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTransientError(op, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperrors.NewTransientError(op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if _, ok := transientPQClasses[string(pqErr.Code.Class())]; ok {
			return apperrors.NewTransientError(op, err)
		}
	}

	return apperrors.NewInternalError(op, err)
}
