package middleware

import (
	"net/http"
	"strconv"
	"time"

	"twitch_gateway/internal/metrics"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
)

type Response struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
}

func WriteSuccessData(w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = jsoniter.NewEncoder(w).Encode(Response{
		Data: data,
	})
}

func WriteErrorResponse(w http.ResponseWriter, r *http.Request, errCode int, err string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errCode)

	_ = jsoniter.NewEncoder(w).Encode(Response{
		Error: err,
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Metrics observes request duration by route template, method and status.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}

		metrics.APIRequestDuration.
			WithLabelValues(path, r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
