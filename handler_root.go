package main

import (
	"net/http"

	"github.com/ColinThePanda/RaspberryPiSite/internal/resolver"
	"github.com/ColinThePanda/RaspberryPiSite/internal/serverinfo"
)

// handlerRoot routes on the normalized path: the diagnostic endpoint first,
// everything else to the content root.
func (cfg *apiConfig) handlerRoot(w http.ResponseWriter, r *http.Request) error {
	path := resolver.Normalize(r.URL.Path)

	if path == serverinfo.Path {
		return cfg.handlerServerInfo(w, r, path)
	}
	return cfg.handlerStatic(w, r, path)
}
