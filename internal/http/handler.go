package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// realtorIDFromReq returns the caller set by Identity. Routes outside the
// identity subrouter never call it, so a zero id is answered with 401.
func realtorIDFromReq(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id := UserIDFrom(r.Context())
	if id == 0 {
		writeJSON(w, http.StatusUnauthorized, Fail("Unauthorized"))
		return 0, false
	}
	return id, true
}

func idFromPath(w http.ResponseWriter, r *http.Request, entity string) (uint, bool) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid "+entity+" id"))
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *zap.Logger, out any) bool {
	if err := readBodyJSON(r, maxBodyBytes, out); err != nil {
		logger.Debug("invalid request body", zap.Error(err), zap.String("path", r.URL.Path))
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return false
	}
	return true
}
