package main

import (
	"net/http"

	"github.com/ColinThePanda/RaspberryPiSite/internal/serverinfo"
)

func (cfg *apiConfig) handlerServerInfo(w http.ResponseWriter, r *http.Request, path string) error {
	payload := serverinfo.Collect(r, path, cfg.getenv, cfg.now())
	return respondWithJSON(w, http.StatusOK, payload)
}
