package utils

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
)

// WriteFulfillmentResponse writes a fulfillment envelope. The webhook
// surface always answers HTTP 200 with a well-formed envelope; the
// conversational platform treats anything else as a broken turn.
func WriteFulfillmentResponse(w http.ResponseWriter, envelope interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(envelope)
}

func WriteJSONResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func WriteTextResponse(w http.ResponseWriter, code int, message string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlain)
	w.WriteHeader(code)
	w.Write([]byte(message))
}
