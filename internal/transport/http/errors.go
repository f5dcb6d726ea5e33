package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeNotFound         = "not_found"
	codeActivityNotFound = "activity_not_found"
	codeAlreadySignedUp  = "already_signed_up"
	codeNotSignedUp      = "not_signed_up"
	codeActivityFull     = "activity_full"
	codeEmailRequired    = "email_required"
	codeForbidden        = "forbidden"
	codeInternalError    = "internal_error"
)

// errorResponse keeps the original wire contract: clients match on a
// human-readable detail string, while code is the machine-readable reason.
type errorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Detail: msg,
		Code:   code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"detail":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
