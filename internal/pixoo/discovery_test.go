package pixoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubnet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"192.168.1", "192.168.1"},
		{"192.168.1.0", "192.168.1"},
		{"10.0.7.0/24", "10.0.7"},
		{"10.0.7.44/24", "10.0.7"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSubnet(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSubnetInvalid(t *testing.T) {
	for _, in := range []string{"", "192.168", "10.0.0.0/16", "300.1.1", "fe80::/24", "a.b.c"} {
		_, err := parseSubnet(in)
		assert.Error(t, err, in)
	}
}
