package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"silvacollect/pkg/connectivity"
)

func TestMonitorNotifiesOnTransitionOnly(t *testing.T) {
	m := connectivity.New(false)

	var got []bool
	m.Subscribe(func(online bool) { got = append(got, online) })

	m.Set(false) // no change, no callback
	require.Empty(t, got)

	m.Set(true)
	require.Equal(t, []bool{true}, got)

	m.Set(true) // repeated value still no callback
	require.Equal(t, []bool{true}, got)

	m.Set(false)
	require.Equal(t, []bool{true, false}, got)
	require.False(t, m.Online())
}

func TestMonitorInitialState(t *testing.T) {
	require.True(t, connectivity.New(true).Online())
	require.False(t, connectivity.New(false).Online())
}
