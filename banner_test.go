package main

import (
	"bytes"
	"net"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPrintBanner(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printBanner(&buf, "0.0.0.0", "8080")
	out := buf.String()

	for _, want := range []string{
		"Server running at http://0.0.0.0:8080/",
		"Press Ctrl+C to stop the server",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("printBanner() output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "Access from your network"); n != len(lanAddresses()) {
		t.Errorf("printBanner() listed %d network addresses, want %d", n, len(lanAddresses()))
	}
}

func TestLANAddresses(t *testing.T) {
	t.Parallel()

	for _, addr := range lanAddresses() {
		ip := net.ParseIP(addr)
		if ip == nil || ip.To4() == nil {
			t.Errorf("lanAddresses() returned non-IPv4 %q", addr)
		}
		if ip != nil && ip.IsLoopback() {
			t.Errorf("lanAddresses() returned loopback %q", addr)
		}
	}
}
