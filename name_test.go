package dirorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinywasm/dirorm"
)

func TestHumanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Computer", "computer"},
		{"OrganizationalUnit", "organizational unit"},
		{"DNSZone", "dns zone"},
		{"GPO", "gpo"},
		{"HTTPServer", "http server"},
		{"UserAccount", "user account"},
		{"AuthenticationSilo", "authentication silo"},
		{"ABc", "a bc"},
		{"UserX", "user x"},
		{"userAccount", "account"},
		{"GPO2Link", "gp link"},
		{"Claim_Type", "claim type"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, dirorm.HumanName(tt.in))
		})
	}
}
