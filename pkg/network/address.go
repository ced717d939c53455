package network

import (
	"fmt"
	"net"
	"net/url"

	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
)

// Address is a TCP endpoint of the node API. It is kept as multiaddr and
// can be parsed from one of:
//
//	/ip4/127.0.0.1/tcp/3000, /dns4/localhost/tcp/3000
//	127.0.0.1:3000, localhost:3000, :3000
//	http://127.0.0.1:3000
type Address struct {
	ma multiaddr.Multiaddr
}

// String returns multiaddr form of the Address.
func (a Address) String() string {
	return a.ma.String()
}

// Equal checks whether both addresses point to the same endpoint.
func (a Address) Equal(addr Address) bool {
	return a.ma.Equal(addr.ma)
}

// HostAddr returns host:port form of the Address.
//
// Panics if Address is not obtained via FromString.
func (a Address) HostAddr() string {
	_, host, err := manet.DialArgs(a.ma)
	if err != nil {
		panic(fmt.Errorf("could not get host addr: %w", err))
	}

	return host
}

// URL returns root HTTP URL of the endpoint.
func (a Address) URL() string {
	return (&url.URL{Scheme: "http", Host: a.HostAddr()}).String()
}

// FromString parses Address from any of the supported forms.
func (a *Address) FromString(s string) error {
	ma, err := multiaddr.NewMultiaddr(s)
	if err != nil {
		ma, err = fromHostPort(hostOf(s))
	}

	if err == nil {
		// only TCP endpoints can be listened or dialed
		_, _, err = manet.DialArgs(ma)
	}

	if err != nil {
		return fmt.Errorf("invalid network address %q: %w", s, err)
	}

	a.ma = ma

	return nil
}

// hostOf strips the scheme from URIs like http://host:port.
func hostOf(s string) string {
	if u, err := url.ParseRequestURI(s); err == nil && u.Host != "" {
		return u.Host
	}

	return s
}

func fromHostPort(hostPort string) (multiaddr.Multiaddr, error) {
	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return nil, err
	}

	var proto string

	switch ip := net.ParseIP(host); {
	case host == "":
		proto, host = "ip4", net.IPv4zero.String()
	case ip == nil:
		proto = "dns4"
	case ip.To4() != nil:
		proto, host = "ip4", ip.String()
	default:
		proto, host = "ip6", ip.String()
	}

	return multiaddr.NewMultiaddr(fmt.Sprintf("/%s/%s/tcp/%s", proto, host, port))
}
