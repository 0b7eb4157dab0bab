package wargaming

import (
	"github.com/antonholmquist/jason"

	"github.com/monester/go-wargaming/params"
)

// wgnEndpoints lists the methods of the common Wargaming.net account API.
var wgnEndpoints = map[string]map[string]methodDesc{
	"account": {
		"list": {path: "account/list/", required: []string{"search"}},
		"info": {path: "account/info/", required: []string{"account_id"}},
	},
	"auth": {
		"login":      {path: "auth/login/"},
		"prolongate": {path: "auth/prolongate/", required: []string{"access_token"}},
		"logout":     {path: "auth/logout/", required: []string{"access_token"}},
	},
	"clans": {
		"list":          {path: "clans/list/"},
		"info":          {path: "clans/info/", required: []string{"clan_id"}},
		"membersinfo":   {path: "clans/membersinfo/", required: []string{"account_id"}},
		"memberhistory": {path: "clans/memberhistory/", required: []string{"account_id"}},
		"glossary":      {path: "clans/glossary/"},
		"messageboard":  {path: "clans/messageboard/", required: []string{"clan_id"}},
	},
	"servers": {
		"info": {path: "servers/info/"},
	},
	"wgtv": {
		"tags":   {path: "wgtv/tags/"},
		"videos": {path: "wgtv/videos/"},
	},
}

// WGN is a client for the Wargaming.net common account API, which serves
// the account, clan and authentication data shared between the games.
type WGN struct {
	*Client

	Account WGNAccount
	Auth    WGNAuth
	Clans   WGNClans
	Servers WGNServers
	WGTV    WGNWGTV
}

// NewWGN returns a Wargaming.net client configured by cfg.
func NewWGN(cfg Config) (*WGN, error) {
	c, err := New(GameWGN, cfg)
	if err != nil {
		return nil, err
	}
	return &WGN{
		Client:  c,
		Account: WGNAccount{c},
		Auth:    WGNAuth{c},
		Clans:   WGNClans{c},
		Servers: WGNServers{c},
		WGTV:    WGNWGTV{c},
	}, nil
}

// WGNAccount groups the account methods.
type WGNAccount struct{ c *Client }

// List searches for players by name.
func (a WGNAccount) List(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "list", p)
}

// Info returns player details.
func (a WGNAccount) Info(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "info", p)
}

// WGNAuth groups the OpenID authentication methods.
type WGNAuth struct{ c *Client }

// Login starts the OpenID login flow and returns the redirect data.
func (a WGNAuth) Login(p params.Values) (*jason.Value, error) {
	return a.c.Call("auth", "login", p)
}

// Prolongate extends the life of an access token.
func (a WGNAuth) Prolongate(p params.Values) (*jason.Value, error) {
	return a.c.Call("auth", "prolongate", p)
}

// Logout invalidates an access token.
func (a WGNAuth) Logout(p params.Values) (*jason.Value, error) {
	return a.c.Call("auth", "logout", p)
}

// WGNClans groups the clan methods shared between the games.
type WGNClans struct{ c *Client }

// List searches for clans by name or tag.
func (c WGNClans) List(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "list", p)
}

// Info returns clan details.
func (c WGNClans) Info(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "info", p)
}

// MembersInfo returns clan member details by account id.
func (c WGNClans) MembersInfo(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "membersinfo", p)
}

// MemberHistory returns the clan history of a player.
func (c WGNClans) MemberHistory(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "memberhistory", p)
}

// Glossary returns general clan entity information.
func (c WGNClans) Glossary(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "glossary", p)
}

// MessageBoard returns clan message board details.
func (c WGNClans) MessageBoard(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "messageboard", p)
}

// WGNServers groups the game server methods.
type WGNServers struct{ c *Client }

// Info returns the online player counts of the game servers.
func (s WGNServers) Info(p params.Values) (*jason.Value, error) {
	return s.c.Call("servers", "info", p)
}

// WGNWGTV groups the Wargaming.TV methods.
type WGNWGTV struct{ c *Client }

// Tags returns the video tag dictionaries.
func (w WGNWGTV) Tags(p params.Values) (*jason.Value, error) {
	return w.c.Call("wgtv", "tags", p)
}

// Videos returns videos filtered by the given parameters.
func (w WGNWGTV) Videos(p params.Values) (*jason.Value, error) {
	return w.c.Call("wgtv", "videos", p)
}
