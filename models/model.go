// Package models holds the directory object types and their generated
// descriptors.
package models

//go:generate go run github.com/tinywasm/dirorm/cmd/dirormc .

// userAccountControl bits.
const (
	AccountDisable     uint32 = 0x0002
	NormalAccount      uint32 = 0x0200
	WorkstationTrust   uint32 = 0x1000
	DontExpirePassword uint32 = 0x10000
)

// User is a directory user account.
type User struct {
	DN                 string
	Username           string   `ldap:"sAMAccountName"`
	Name               string
	DisplayName        string
	GivenName          string
	Surname            string   `ldap:"sn"`
	Mail               string
	UserPrincipalName  string
	Description        string
	UserAccountControl uint32
	MemberOf           []string `ldap:"memberOf,dn,readonly"`
	ObjectGUID         string   `ldap:"objectGUID,readonly"`
}

// Enabled reports whether the account is not disabled.
func (u *User) Enabled() bool {
	return u.UserAccountControl&AccountDisable == 0
}

// Group is a security or distribution group.
type Group struct {
	DN                     string
	Name                   string
	Account                string   `ldap:"sAMAccountName"`
	AdminCount             int64
	Description            string
	IsCriticalSystemObject bool     `ldap:"isCriticalSystemObject,readonly"`
	Member                 []string `ldap:"member,dn"`
	ObjectSID              string   `ldap:"objectSid,readonly"`
	SystemFlags            int32
	ObjectGUID             string   `ldap:"objectGUID,readonly"`
}

// Computer is a workstation or server account.
type Computer struct {
	DN                 string
	Name               string
	Account            string `ldap:"sAMAccountName"`
	DNSHostName        string `ldap:"dNSHostName"`
	OperatingSystem    string
	Description        string
	UserAccountControl uint32
	ObjectGUID         string `ldap:"objectGUID,readonly"`
}

// OrganizationalUnit is a container for other objects.
type OrganizationalUnit struct {
	DN          string
	Name        string `ldap:"ou"`
	Description string
	GPLink      string `ldap:"gPLink"`
	ObjectGUID  string `ldap:"objectGUID,readonly"`
}
