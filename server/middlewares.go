package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed).SprintFunc()
	yellowColor = color.New(color.FgYellow).SprintFunc()
	greenColor  = color.New(color.FgGreen).SprintFunc()
)

type ResponseWriterWithStatus struct {
	http.ResponseWriter
	Status int
}

func (r *ResponseWriterWithStatus) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		responseWriter := &ResponseWriterWithStatus{
			ResponseWriter: w,
			Status:         200,
		}

		defer func() {
			responseStatus := greenColor(responseWriter.Status)
			if responseWriter.Status >= 400 {
				responseStatus = redColor(responseWriter.Status)
			}

			logg.Infof("%v %v %v %v",
				r.Method,
				r.RequestURI,
				responseStatus,
				yellowColor(fmt.Sprintf("[%v]", time.Since(start))))
		}()

		next.ServeHTTP(responseWriter, r)
	})
}

// recoveryMiddleware turns an unhandled panic into a generic 500 page
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logg.Errorf("panic serving %v %v: %v", r.Method, r.URL.Path, rec)
				renderError(w, r, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
