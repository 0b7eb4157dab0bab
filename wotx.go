package wargaming

import (
	"github.com/antonholmquist/jason"

	"github.com/monester/go-wargaming/params"
)

// wotxEndpoints lists the World of Tanks Console methods known to this
// library. Console players live on the xbox and ps4 regions.
var wotxEndpoints = map[string]map[string]methodDesc{
	"account": {
		"list":         {path: "account/list/", required: []string{"search"}},
		"info":         {path: "account/info/", required: []string{"account_id"}},
		"achievements": {path: "account/achievements/", required: []string{"account_id"}},
	},
	"clans": {
		"list":        {path: "clans/list/"},
		"info":        {path: "clans/info/", required: []string{"clan_id"}},
		"accountinfo": {path: "clans/accountinfo/", required: []string{"account_id"}},
		"glossary":    {path: "clans/glossary/"},
	},
	"encyclopedia": {
		"vehicles":       {path: "encyclopedia/vehicles/"},
		"vehicleprofile": {path: "encyclopedia/vehicleprofile/", required: []string{"tank_id"}},
		"achievements":   {path: "encyclopedia/achievements/"},
		"info":           {path: "encyclopedia/info/"},
	},
	"tanks": {
		"stats":        {path: "tanks/stats/", required: []string{"account_id"}},
		"achievements": {path: "tanks/achievements/", required: []string{"account_id"}},
	},
}

// WoTX is a client for the World of Tanks Console API.
type WoTX struct {
	*Client

	Account      WoTXAccount
	Clans        WoTXClans
	Encyclopedia WoTXEncyclopedia
	Tanks        WoTXTanks
}

// NewWoTX returns a World of Tanks Console client configured by cfg.
// Use RegionXbox or RegionPS4 as the region.
func NewWoTX(cfg Config) (*WoTX, error) {
	c, err := New(GameWoTX, cfg)
	if err != nil {
		return nil, err
	}
	return &WoTX{
		Client:       c,
		Account:      WoTXAccount{c},
		Clans:        WoTXClans{c},
		Encyclopedia: WoTXEncyclopedia{c},
		Tanks:        WoTXTanks{c},
	}, nil
}

// WoTXAccount groups the account methods.
type WoTXAccount struct{ c *Client }

// List searches for players by name.
func (a WoTXAccount) List(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "list", p)
}

// Info returns player details.
func (a WoTXAccount) Info(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "info", p)
}

// Achievements returns player achievement details.
func (a WoTXAccount) Achievements(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "achievements", p)
}

// WoTXClans groups the console clan methods.
type WoTXClans struct{ c *Client }

// List searches for clans by name or tag.
func (c WoTXClans) List(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "list", p)
}

// Info returns clan details.
func (c WoTXClans) Info(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "info", p)
}

// AccountInfo returns the clan membership of players.
func (c WoTXClans) AccountInfo(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "accountinfo", p)
}

// Glossary returns general clan entity information.
func (c WoTXClans) Glossary(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "glossary", p)
}

// WoTXEncyclopedia groups the console encyclopedia methods.
type WoTXEncyclopedia struct{ c *Client }

// Vehicles returns the vehicle encyclopedia.
func (e WoTXEncyclopedia) Vehicles(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "vehicles", p)
}

// VehicleProfile returns the characteristics of one vehicle configuration.
func (e WoTXEncyclopedia) VehicleProfile(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "vehicleprofile", p)
}

// Achievements returns the achievement dictionary.
func (e WoTXEncyclopedia) Achievements(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "achievements", p)
}

// Info returns encyclopedia metadata such as the game version.
func (e WoTXEncyclopedia) Info(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "info", p)
}

// WoTXTanks groups the per-vehicle statistics methods.
type WoTXTanks struct{ c *Client }

// Stats returns per-vehicle player statistics.
func (t WoTXTanks) Stats(p params.Values) (*jason.Value, error) {
	return t.c.Call("tanks", "stats", p)
}

// Achievements returns per-vehicle player achievements.
func (t WoTXTanks) Achievements(p params.Values) (*jason.Value, error) {
	return t.c.Call("tanks", "achievements", p)
}
