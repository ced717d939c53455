package network

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress_FromString(t *testing.T) {
	for _, tc := range []struct {
		s, ma, host string
	}{
		{s: "127.0.0.1:8080", ma: "/ip4/127.0.0.1/tcp/8080", host: "127.0.0.1:8080"},
		{s: ":8080", ma: "/ip4/0.0.0.0/tcp/8080", host: "0.0.0.0:8080"},
		{s: "localhost:8080", ma: "/dns4/localhost/tcp/8080", host: "localhost:8080"},
		{s: "http://10.0.0.1:80", ma: "/ip4/10.0.0.1/tcp/80", host: "10.0.0.1:80"},
		{s: "[::1]:8080", ma: "/ip6/::1/tcp/8080", host: "[::1]:8080"},
		{s: "/ip4/192.168.0.1/tcp/3000", ma: "/ip4/192.168.0.1/tcp/3000", host: "192.168.0.1:3000"},
	} {
		var a Address

		require.NoError(t, a.FromString(tc.s), tc.s)
		require.Equal(t, tc.ma, a.String(), tc.s)
		require.Equal(t, tc.host, a.HostAddr(), tc.s)
	}

	var a Address

	require.Error(t, a.FromString("not an address"))
	require.Error(t, a.FromString("127.0.0.1"))
}

func TestAddress_Equal(t *testing.T) {
	var a, b Address

	require.NoError(t, a.FromString("127.0.0.1:8080"))
	require.NoError(t, b.FromString("/ip4/127.0.0.1/tcp/8080"))
	require.True(t, a.Equal(b))

	require.NoError(t, b.FromString("127.0.0.1:8081"))
	require.False(t, a.Equal(b))
}

func TestListen(t *testing.T) {
	_, err := Listen(Address{})
	require.Error(t, err)

	for _, s := range []string{"127.0.0.1:0", "localhost:0"} {
		var a Address

		require.NoError(t, a.FromString(s))

		lis, err := Listen(a)
		require.NoError(t, err, s)

		go func() { _ = http.Serve(lis, http.NotFoundHandler()) }()

		var served Address
		require.NoError(t, served.FromString(lis.Addr().String()))

		resp, err := http.Get(served.URL())
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		require.NoError(t, lis.Close())
	}

	var a Address

	require.NoError(t, a.FromString("127.0.0.1:0"))

	lis, err := Listen(a)
	require.NoError(t, err)

	t.Cleanup(func() { _ = lis.Close() })

	// port is busy
	require.NoError(t, a.FromString(lis.Addr().String()))

	_, err = Listen(a)
	require.Error(t, err)
}
