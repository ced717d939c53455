package network

import (
	"fmt"
	"net"

	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
)

// Listen announces on the local network address.
func Listen(addr Address) (net.Listener, error) {
	if addr.ma == nil {
		return nil, fmt.Errorf("empty network address")
	}

	// dns4 is not resolved by manet.Listen
	if _, err := addr.ma.ValueForProtocol(multiaddr.P_DNS4); err == nil {
		return net.Listen("tcp", addr.HostAddr())
	}

	mLis, err := manet.Listen(addr.ma)
	if err != nil {
		return nil, err
	}

	return manet.NetListener(mLis), nil
}
