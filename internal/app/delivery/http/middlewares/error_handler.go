package middlewares

import (
	"errors"
	"net/http"

	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/utils"
	"go.uber.org/zap"
)

// ErrorHandler converts panics into the generic apology envelope with
// HTTP 200. The fulfillment surface must always answer a well-formed
// envelope; the dialog platform cannot use a 5xx.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				m.Log.Error("Recovered from panic while handling request",
					zap.String("endpoint", r.URL.Path),
					zap.Error(err),
				)
				utils.WriteFulfillmentResponse(w, m.Renderer.Apology())
			}
		}()
		next.ServeHTTP(w, r)
	})
}
