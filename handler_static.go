package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/ColinThePanda/RaspberryPiSite/internal/resolver"
)

const (
	msgNotFound      = "404 - File Not Found"
	msgInternalError = "500 - Internal Server Error"
)

func (cfg *apiConfig) handlerStatic(w http.ResponseWriter, r *http.Request, path string) error {
	f, err := cfg.files.Resolve(path)
	if errors.Is(err, resolver.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, msgNotFound, nil)
		return nil
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, msgInternalError, err)
		return nil
	}
	defer f.Close()

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(f.Info.Size(), 10))
	w.WriteHeader(http.StatusOK)

	// Headers are already on the wire, so a failed copy can only be logged.
	if _, err := io.Copy(w, f); err != nil {
		log.Printf("Error sending %s: %v", f.Name, err)
	}
	return nil
}
