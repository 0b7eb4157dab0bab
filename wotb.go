package wargaming

import (
	"github.com/antonholmquist/jason"

	"github.com/monester/go-wargaming/params"
)

// wotbEndpoints lists the World of Tanks Blitz methods known to this library.
var wotbEndpoints = map[string]map[string]methodDesc{
	"account": {
		"list":         {path: "account/list/", required: []string{"search"}},
		"info":         {path: "account/info/", required: []string{"account_id"}},
		"achievements": {path: "account/achievements/", required: []string{"account_id"}},
		"tankstats":    {path: "account/tankstats/", required: []string{"account_id", "tank_id"}},
	},
	"clans": {
		"list":        {path: "clans/list/"},
		"info":        {path: "clans/info/", required: []string{"clan_id"}},
		"accountinfo": {path: "clans/accountinfo/", required: []string{"account_id"}},
		"glossary":    {path: "clans/glossary/"},
	},
	"encyclopedia": {
		"vehicles":        {path: "encyclopedia/vehicles/"},
		"vehicleprofile":  {path: "encyclopedia/vehicleprofile/", required: []string{"tank_id"}},
		"vehicleprofiles": {path: "encyclopedia/vehicleprofiles/", required: []string{"tank_id"}},
		"modules":         {path: "encyclopedia/modules/"},
		"provisions":      {path: "encyclopedia/provisions/"},
		"achievements":    {path: "encyclopedia/achievements/"},
		"info":            {path: "encyclopedia/info/"},
	},
	"tanks": {
		"stats":        {path: "tanks/stats/", required: []string{"account_id"}},
		"achievements": {path: "tanks/achievements/", required: []string{"account_id"}},
	},
	"tournaments": {
		"list":   {path: "tournaments/list/"},
		"info":   {path: "tournaments/info/", required: []string{"tournament_id"}},
		"teams":  {path: "tournaments/teams/", required: []string{"tournament_id"}},
		"stages": {path: "tournaments/stages/", required: []string{"tournament_id"}},
	},
}

// WoTB is a client for the World of Tanks Blitz API.
type WoTB struct {
	*Client

	Account      WoTBAccount
	Clans        WoTBClans
	Encyclopedia WoTBEncyclopedia
	Tanks        WoTBTanks
	Tournaments  WoTBTournaments
}

// NewWoTB returns a World of Tanks Blitz client configured by cfg.
func NewWoTB(cfg Config) (*WoTB, error) {
	c, err := New(GameWoTB, cfg)
	if err != nil {
		return nil, err
	}
	return &WoTB{
		Client:       c,
		Account:      WoTBAccount{c},
		Clans:        WoTBClans{c},
		Encyclopedia: WoTBEncyclopedia{c},
		Tanks:        WoTBTanks{c},
		Tournaments:  WoTBTournaments{c},
	}, nil
}

// WoTBAccount groups the account methods.
type WoTBAccount struct{ c *Client }

// List searches for players by name.
func (a WoTBAccount) List(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "list", p)
}

// Info returns player details.
func (a WoTBAccount) Info(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "info", p)
}

// Achievements returns player achievement details.
func (a WoTBAccount) Achievements(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "achievements", p)
}

// TankStats returns the statistics of a player on one vehicle.
func (a WoTBAccount) TankStats(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "tankstats", p)
}

// WoTBClans groups the Blitz clan methods.
type WoTBClans struct{ c *Client }

// List searches for clans by name or tag.
func (c WoTBClans) List(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "list", p)
}

// Info returns clan details.
func (c WoTBClans) Info(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "info", p)
}

// AccountInfo returns the clan membership of players.
func (c WoTBClans) AccountInfo(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "accountinfo", p)
}

// Glossary returns general clan entity information.
func (c WoTBClans) Glossary(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "glossary", p)
}

// WoTBEncyclopedia groups the Blitz encyclopedia methods.
type WoTBEncyclopedia struct{ c *Client }

// Vehicles returns the vehicle encyclopedia.
func (e WoTBEncyclopedia) Vehicles(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "vehicles", p)
}

// VehicleProfile returns the characteristics of one vehicle configuration.
func (e WoTBEncyclopedia) VehicleProfile(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "vehicleprofile", p)
}

// VehicleProfiles returns all configurations of a vehicle.
func (e WoTBEncyclopedia) VehicleProfiles(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "vehicleprofiles", p)
}

// Modules returns the vehicle module dictionary.
func (e WoTBEncyclopedia) Modules(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "modules", p)
}

// Provisions returns the equipment and consumable dictionary.
func (e WoTBEncyclopedia) Provisions(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "provisions", p)
}

// Achievements returns the achievement dictionary.
func (e WoTBEncyclopedia) Achievements(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "achievements", p)
}

// Info returns encyclopedia metadata such as the game version.
func (e WoTBEncyclopedia) Info(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "info", p)
}

// WoTBTanks groups the per-vehicle statistics methods.
type WoTBTanks struct{ c *Client }

// Stats returns per-vehicle player statistics.
func (t WoTBTanks) Stats(p params.Values) (*jason.Value, error) {
	return t.c.Call("tanks", "stats", p)
}

// Achievements returns per-vehicle player achievements.
func (t WoTBTanks) Achievements(p params.Values) (*jason.Value, error) {
	return t.c.Call("tanks", "achievements", p)
}

// WoTBTournaments groups the tournament methods.
type WoTBTournaments struct{ c *Client }

// List returns tournaments filtered by the given parameters.
func (t WoTBTournaments) List(p params.Values) (*jason.Value, error) {
	return t.c.Call("tournaments", "list", p)
}

// Info returns tournament details.
func (t WoTBTournaments) Info(p params.Values) (*jason.Value, error) {
	return t.c.Call("tournaments", "info", p)
}

// Teams returns the teams of a tournament.
func (t WoTBTournaments) Teams(p params.Values) (*jason.Value, error) {
	return t.c.Call("tournaments", "teams", p)
}

// Stages returns the stages of a tournament.
func (t WoTBTournaments) Stages(p params.Values) (*jason.Value, error) {
	return t.c.Call("tournaments", "stages", p)
}
