package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/responses"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(
		zap.NewNop(),
		logrus.New(),
		&config.InternalConfig{},
		responses.NewRenderer(config.Webhook{ResponseEnvelope: constvars.ResponseEnvelopeFlat}),
	)
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares()

	t.Run("generates an ID when the client sends none", func(t *testing.T) {
		var seenID string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			isClient, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			assert.False(t, isClient)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/webhook", nil))

		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("honors the client request ID", func(t *testing.T) {
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			assert.Equal(t, "client-id-1", id)
			isClient, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			assert.True(t, isClient)
		}))

		req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandlerRecoversToApologyEnvelope(t *testing.T) {
	middlewares := newTestMiddlewares()

	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/webhook", nil))

	// The fulfillment surface never answers 5xx.
	assert.Equal(t, http.StatusOK, rr.Code)

	var envelope responses.FlatFulfillmentResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, constvars.VerificationTroubleMessage, envelope.FulfillmentText)
	assert.NotContains(t, rr.Body.String(), "boom")
}
