package middleware

import (
	"net/http"
	"runtime"
	"time"

	"github.com/corretorahub/sales-dashboard-api/pkg/apiErrors"
	"github.com/corretorahub/sales-dashboard-api/pkg/log"
)

// slowRequestThreshold marca requisições que merecem um aviso de lentidão
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição HTTP com um ID de correlação,
// elevando o nível do log conforme o status da resposta
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			srw := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(srw, r)

			duration := time.Since(startTime)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    srw.statusCode,
				"duration_ms":    duration.Milliseconds(),
			})

			switch {
			case srw.statusCode >= 500:
				logger.Error("Requisição finalizada com erro")
			case srw.statusCode >= 400:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada")
			}

			if duration > slowRequestThreshold {
				logger.Warn("Requisição lenta")
			}
		})
	}
}

// statusResponseWriter captura o status code escrito pelo handler
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics em resposta 500 padronizada, registrando
// a pilha de chamadas
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack[:stackSize]),
					}).Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
