// Package serverinfo describes the host and runtime answering a request.
package serverinfo

import (
	"net"
	"net/http"
	"runtime"
	"time"
)

// Path is the route the diagnostic endpoint is served on.
const Path = "/api/serverinfo"

const (
	unknown = "unknown"

	// timeLayout matches the en-US locale string, e.g. "10/15/2026, 3:04:05 PM".
	timeLayout = "1/2/2006, 3:04:05 PM"
)

type Info struct {
	Time       string `json:"time"`
	Hostname   string `json:"hostname"`
	Platform   string `json:"platform"`
	Arch       string `json:"arch"`
	GoVersion  string `json:"goVersion"`
	RequestURL string `json:"requestUrl"`
	ClientIP   string `json:"clientIp"`
}

// Collect builds the Info for r. getenv is consulted on every call so that
// changes to HOSTNAME show up without a restart.
func Collect(r *http.Request, requestURL string, getenv func(string) string, now time.Time) Info {
	hostname := getenv("HOSTNAME")
	if hostname == "" {
		hostname = unknown
	}

	return Info{
		Time:       FormatTime(now),
		Hostname:   hostname,
		Platform:   runtime.GOOS,
		Arch:       runtime.GOARCH,
		GoVersion:  runtime.Version(),
		RequestURL: requestURL,
		ClientIP:   ClientIP(r.RemoteAddr),
	}
}

// FormatTime renders t in local time.
func FormatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

// ClientIP returns the host part of a "host:port" remote address.
func ClientIP(remoteAddr string) string {
	if remoteAddr == "" {
		return unknown
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		// No port, e.g. a unix socket peer or a bare address.
		return remoteAddr
	}
	if host == "" {
		return unknown
	}
	return host
}
