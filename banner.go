package main

import (
	"fmt"
	"io"
	"net"

	"github.com/fatih/color"
)

func printBanner(w io.Writer, host, port string) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	green.Fprintf(w, "🚀 Server running at http://%s/\n", net.JoinHostPort(host, port))
	for _, ip := range lanAddresses() {
		cyan.Fprintf(w, "Access from your network at http://%s/\n", net.JoinHostPort(ip, port))
	}
	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
}

// lanAddresses lists the non-loopback IPv4 addresses of this host.
func lanAddresses() []string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}

	var ips []string
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			ips = append(ips, ip4.String())
		}
	}
	return ips
}
