package testmodels

import "time"

type Printer struct {
	DN         string
	Name       string   `ldap:"cn"`
	Location   string
	PortCount  int
	Duplex     bool     `ldap:"printDuplexSupported"`
	Servers    []string `ldap:"serverName,dn"`
	ObjectGUID string   `ldap:"objectGUID,readonly"`
	Secret     string   `ldap:"-"`
	internal   string
}

type Site struct {
	Name    string
	Subnets []string `ldap:"siteObjectBL,dn,readonly"`
}

func (Site) ObjectClass() string { return "site" }

type BadTime struct {
	CreatedAt time.Time
}

type BadOption struct {
	Count int64 `ldap:"count,dn"`
}

type Unsupp struct {
	Ch chan int
}
