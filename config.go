package seriesdb

import (
	"net"
	"net/url"
	"strings"
)

// Config defines the configuration for the client.
type Config struct {
	// Address is the URL of the SeriesDB server.
	//
	// The scheme and the port are optional: "http" and 8086 are assumed
	// when absent, so "localhost", "localhost:8086" and
	// "http://localhost:8086" all name the same server.
	Address string `json:"address"`
	// Username is the username to authenticate with.
	//
	// Credentials are only attached to requests when both Username and
	// Password are non-empty.
	Username string `json:"username"`
	// Password is the password to authenticate with.
	Password string `json:"password"`
}

const defaultPort = "8086"

// normalizeAddress resolves the configured address into a base URL that
// always carries an explicit scheme and port.
func normalizeAddress(address string) (*url.URL, error) {
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}

	u, err := url.Parse(address)
	if err != nil {
		return nil, &ConfigError{Address: address, Err: err}
	}

	if u.Port() == "" {
		u.Host = net.JoinHostPort(u.Hostname(), defaultPort)
	}
	return u, nil
}
