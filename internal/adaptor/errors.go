package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps a rejected operation to its status code by kind. The
// kind is echoed in errors.kind so clients can branch without parsing messages.
// Anything without a kind is an infrastructure failure and is reported as 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	kind := apperror.KindOf(err)
	if kind == "" {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" rejected",
		zap.String("kind", string(kind)),
		zap.Error(err),
		zap.String("operation", operation),
	)

	errs := map[string]string{"kind": string(kind)}
	msg := err.Error()

	switch kind {
	case apperror.KindNotFound, apperror.KindRateNotFound:
		utils.ResponseNotFound(w, msg, errs)

	case apperror.KindInvalidInput:
		utils.ResponseBadRequest(w, msg, errs)

	case apperror.KindUnauthorized:
		utils.ResponseUnauthorized(w, msg)

	case apperror.KindForbidden:
		utils.ResponseForbidden(w, msg)

	case apperror.KindRoomUnavailable,
		apperror.KindRoomOccupied,
		apperror.KindRoomCleaning,
		apperror.KindRoomUnderMaintenance,
		apperror.KindInvalidTransition,
		apperror.KindBookingNotPayable:
		utils.ResponseConflict(w, msg, errs)

	case apperror.KindOccupancyExceeded,
		apperror.KindAmountExceedsBalance,
		apperror.KindInvalidPaymentMethod:
		utils.ResponseUnprocessable(w, msg, errs)

	default:
		log.Error("Unmapped error kind", zap.String("kind", string(kind)))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeJSON reads the body into dst and validates it. It writes the 400 itself
// and reports false when the request should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

// actorID is the authenticated staff member, or "" on routes without a session.
func actorID(r *http.Request) string {
	if actor, ok := utils.ActorFrom(r.Context()); ok {
		return actor.UserID.String()
	}
	return ""
}
