package util_test

import (
	"testing"

	"github.com/nspcc-dev/eigentrust-node/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestPseudoWorkerPool(t *testing.T) {
	p := util.NewPseudoWorkerPool()

	var n int

	require.NoError(t, p.Submit(func() { n++ }))
	require.Equal(t, 1, n)

	p.Release()

	require.ErrorIs(t, p.Submit(func() { n++ }), util.ErrPoolClosed)
	require.Equal(t, 1, n)
}

func TestExclusivePool(t *testing.T) {
	p, err := util.NewExclusivePool()
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	require.NoError(t, p.Submit(func() {
		close(started)
		<-release
		close(done)
	}))

	<-started

	require.ErrorIs(t, p.Submit(func() {}), util.ErrPoolOverload)

	close(release)
	<-done

	p.Release()

	require.ErrorIs(t, p.Submit(func() {}), util.ErrPoolClosed)
}
