package wargaming

import (
	"github.com/antonholmquist/jason"

	"github.com/monester/go-wargaming/params"
)

// wowsEndpoints lists the World of Warships methods known to this library.
var wowsEndpoints = map[string]map[string]methodDesc{
	"account": {
		"list":         {path: "account/list/", required: []string{"search"}},
		"info":         {path: "account/info/", required: []string{"account_id"}},
		"achievements": {path: "account/achievements/", required: []string{"account_id"}},
		"statsbydate":  {path: "account/statsbydate/", required: []string{"account_id"}},
	},
	"clans": {
		"list":        {path: "clans/list/"},
		"details":     {path: "clans/details/", required: []string{"clan_id"}},
		"accountinfo": {path: "clans/accountinfo/", required: []string{"account_id"}},
		"glossary":    {path: "clans/glossary/"},
		"season":      {path: "clans/season/"},
	},
	"encyclopedia": {
		"info":         {path: "encyclopedia/info/"},
		"ships":        {path: "encyclopedia/ships/"},
		"shipprofile":  {path: "encyclopedia/shipprofile/", required: []string{"ship_id"}},
		"achievements": {path: "encyclopedia/achievements/"},
		"modules":      {path: "encyclopedia/modules/"},
		"consumables":  {path: "encyclopedia/consumables/"},
		"battletypes":  {path: "encyclopedia/battletypes/"},
	},
	"ships": {
		"stats": {path: "ships/stats/", required: []string{"account_id"}},
	},
	"seasons": {
		"info":        {path: "seasons/info/"},
		"shipstats":   {path: "seasons/shipstats/", required: []string{"account_id"}},
		"accountinfo": {path: "seasons/accountinfo/", required: []string{"account_id"}},
	},
}

// WoWS is a client for the World of Warships API.
type WoWS struct {
	*Client

	Account      WoWSAccount
	Clans        WoWSClans
	Encyclopedia WoWSEncyclopedia
	Ships        WoWSShips
	Seasons      WoWSSeasons
}

// NewWoWS returns a World of Warships client configured by cfg.
func NewWoWS(cfg Config) (*WoWS, error) {
	c, err := New(GameWoWS, cfg)
	if err != nil {
		return nil, err
	}
	return &WoWS{
		Client:       c,
		Account:      WoWSAccount{c},
		Clans:        WoWSClans{c},
		Encyclopedia: WoWSEncyclopedia{c},
		Ships:        WoWSShips{c},
		Seasons:      WoWSSeasons{c},
	}, nil
}

// WoWSAccount groups the account methods.
type WoWSAccount struct{ c *Client }

// List searches for players by name.
func (a WoWSAccount) List(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "list", p)
}

// Info returns player details.
func (a WoWSAccount) Info(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "info", p)
}

// Achievements returns player achievement details.
func (a WoWSAccount) Achievements(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "achievements", p)
}

// StatsByDate returns player statistics sliced by date.
func (a WoWSAccount) StatsByDate(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "statsbydate", p)
}

// WoWSClans groups the warships clan methods.
type WoWSClans struct{ c *Client }

// List searches for clans by name or tag.
func (c WoWSClans) List(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "list", p)
}

// Details returns clan details.
func (c WoWSClans) Details(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "details", p)
}

// AccountInfo returns the clan membership of players.
func (c WoWSClans) AccountInfo(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "accountinfo", p)
}

// Glossary returns general clan entity information.
func (c WoWSClans) Glossary(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "glossary", p)
}

// Season returns clan battle season information.
func (c WoWSClans) Season(p params.Values) (*jason.Value, error) {
	return c.c.Call("clans", "season", p)
}

// WoWSEncyclopedia groups the warships encyclopedia methods.
type WoWSEncyclopedia struct{ c *Client }

// Info returns encyclopedia metadata such as the game version.
func (e WoWSEncyclopedia) Info(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "info", p)
}

// Ships returns the ship encyclopedia.
func (e WoWSEncyclopedia) Ships(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "ships", p)
}

// ShipProfile returns the characteristics of one ship configuration.
func (e WoWSEncyclopedia) ShipProfile(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "shipprofile", p)
}

// Achievements returns the achievement dictionary.
func (e WoWSEncyclopedia) Achievements(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "achievements", p)
}

// Modules returns the ship module dictionary.
func (e WoWSEncyclopedia) Modules(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "modules", p)
}

// Consumables returns the consumable dictionary.
func (e WoWSEncyclopedia) Consumables(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "consumables", p)
}

// BattleTypes returns the battle type dictionary.
func (e WoWSEncyclopedia) BattleTypes(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "battletypes", p)
}

// WoWSShips groups the per-ship statistics methods.
type WoWSShips struct{ c *Client }

// Stats returns per-ship player statistics.
func (s WoWSShips) Stats(p params.Values) (*jason.Value, error) {
	return s.c.Call("ships", "stats", p)
}

// WoWSSeasons groups the ranked battle season methods.
type WoWSSeasons struct{ c *Client }

// Info returns ranked battle season details.
func (s WoWSSeasons) Info(p params.Values) (*jason.Value, error) {
	return s.c.Call("seasons", "info", p)
}

// ShipStats returns per-ship season statistics of a player.
func (s WoWSSeasons) ShipStats(p params.Values) (*jason.Value, error) {
	return s.c.Call("seasons", "shipstats", p)
}

// AccountInfo returns season statistics of a player.
func (s WoWSSeasons) AccountInfo(p params.Values) (*jason.Value, error) {
	return s.c.Call("seasons", "accountinfo", p)
}
