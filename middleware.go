package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type handlerFuncE func(w http.ResponseWriter, r *http.Request) error

// handleErrors turns an error escaping a handler into a 500 carrying the
// error's message.
func handleErrors(h handlerFuncE) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			respondWithFault(w, err.Error())
		}
	})
}

// middlewareRecover turns a panic into a 500 carrying the panic value. If
// the response has already started it can only be logged.
func middlewareRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := w.(*statusRecorder)
		if !ok {
			rec = &statusRecorder{ResponseWriter: w}
		}
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				log.Printf("panic serving %s: %v", r.URL.Path, v)
				if rec.status != 0 {
					return
				}
				respondWithFault(rec, fmt.Sprint(v))
			}
		}()
		next.ServeHTTP(rec, r)
	})
}

func respondWithFault(w http.ResponseWriter, msg string) {
	respondWithError(w, http.StatusInternalServerError, "Error: "+msg, nil)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.status == 0 {
		rec.status = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.ResponseWriter.Write(b)
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

func middlewareLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New()
		w.Header().Set("X-Request-Id", id.String())

		rec := &statusRecorder{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s %s", r.Method, r.URL.Path, rec.status, time.Since(start), id)
	})
}
