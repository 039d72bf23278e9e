package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicService_GetAddresses(t *testing.T) {
	s := BasicService{Addresses: []string{"localhost:2112", ":2113"}}
	addrs := s.GetAddresses()
	require.Equal(t, s.Addresses, addrs)
	addrs[0] = "changed"
	require.Equal(t, "localhost:2112", s.Addresses[0])
	require.Empty(t, BasicService{}.GetAddresses())
}
