package wargaming

import (
	"github.com/antonholmquist/jason"

	"github.com/monester/go-wargaming/params"
)

// wotEndpoints lists the World of Tanks methods known to this library.
// Clan methods are not here; Wargaming serves them from the common wgn
// namespace (see wgnEndpoints).
var wotEndpoints = map[string]map[string]methodDesc{
	"account": {
		"list":         {path: "account/list/", required: []string{"search"}},
		"info":         {path: "account/info/", required: []string{"account_id"}},
		"tanks":        {path: "account/tanks/", required: []string{"account_id"}},
		"achievements": {path: "account/achievements/", required: []string{"account_id"}},
	},
	"clanratings": {
		"types":     {path: "clanratings/types/"},
		"dates":     {path: "clanratings/dates/"},
		"clans":     {path: "clanratings/clans/", required: []string{"clan_id"}},
		"neighbors": {path: "clanratings/neighbors/", required: []string{"clan_id", "rank_field"}},
		"top":       {path: "clanratings/top/", required: []string{"rank_field"}},
	},
	"encyclopedia": {
		"vehicles":        {path: "encyclopedia/vehicles/"},
		"vehicleprofile":  {path: "encyclopedia/vehicleprofile/", required: []string{"tank_id"}},
		"vehicleprofiles": {path: "encyclopedia/vehicleprofiles/", required: []string{"tank_id"}},
		"achievements":    {path: "encyclopedia/achievements/"},
		"arenas":          {path: "encyclopedia/arenas/"},
		"provisions":      {path: "encyclopedia/provisions/"},
		"badges":          {path: "encyclopedia/badges/"},
		"info":            {path: "encyclopedia/info/"},
	},
	"globalmap": {
		"info":             {path: "globalmap/info/"},
		"fronts":           {path: "globalmap/fronts/"},
		"provinces":        {path: "globalmap/provinces/", required: []string{"front_id"}},
		"claninfo":         {path: "globalmap/claninfo/", required: []string{"clan_id"}},
		"clanprovinces":    {path: "globalmap/clanprovinces/", required: []string{"clan_id"}},
		"clanbattles":      {path: "globalmap/clanbattles/", required: []string{"clan_id"}},
		"seasons":          {path: "globalmap/seasons/"},
		"events":           {path: "globalmap/events/"},
		"eventclaninfo":    {path: "globalmap/eventclaninfo/", required: []string{"event_id", "front_id", "clan_id"}},
		"eventaccountinfo": {path: "globalmap/eventaccountinfo/", required: []string{"event_id", "front_id", "account_id"}},
	},
	"ratings": {
		"types":     {path: "ratings/types/"},
		"dates":     {path: "ratings/dates/", required: []string{"type"}},
		"accounts":  {path: "ratings/accounts/", required: []string{"type", "account_id"}},
		"neighbors": {path: "ratings/neighbors/", required: []string{"type", "account_id", "rank_field"}},
		"top":       {path: "ratings/top/", required: []string{"type", "rank_field"}},
	},
	"stronghold": {
		"claninfo":     {path: "stronghold/claninfo/", required: []string{"clan_id"}},
		"clanreserves": {path: "stronghold/clanreserves/", required: []string{"clan_id"}},
	},
	"tanks": {
		"stats":        {path: "tanks/stats/", required: []string{"account_id"}},
		"achievements": {path: "tanks/achievements/", required: []string{"account_id"}},
	},
}

// WoT is a client for the World of Tanks API.
type WoT struct {
	*Client

	Account      WoTAccount
	ClanRatings  WoTClanRatings
	Encyclopedia WoTEncyclopedia
	GlobalMap    WoTGlobalMap
	Ratings      WoTRatings
	Stronghold   WoTStronghold
	Tanks        WoTTanks
}

// NewWoT returns a World of Tanks client configured by cfg.
func NewWoT(cfg Config) (*WoT, error) {
	c, err := New(GameWoT, cfg)
	if err != nil {
		return nil, err
	}
	return &WoT{
		Client:       c,
		Account:      WoTAccount{c},
		ClanRatings:  WoTClanRatings{c},
		Encyclopedia: WoTEncyclopedia{c},
		GlobalMap:    WoTGlobalMap{c},
		Ratings:      WoTRatings{c},
		Stronghold:   WoTStronghold{c},
		Tanks:        WoTTanks{c},
	}, nil
}

// WoTAccount groups the account methods.
type WoTAccount struct{ c *Client }

// List searches for players by name.
func (a WoTAccount) List(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "list", p)
}

// Info returns player details.
func (a WoTAccount) Info(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "info", p)
}

// Tanks returns details on every vehicle a player has battled in.
func (a WoTAccount) Tanks(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "tanks", p)
}

// Achievements returns player achievement details.
func (a WoTAccount) Achievements(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "achievements", p)
}

// WoTClanRatings groups the clan rating methods.
type WoTClanRatings struct{ c *Client }

// Types returns the available clan rating types.
func (r WoTClanRatings) Types(p params.Values) (*jason.Value, error) {
	return r.c.Call("clanratings", "types", p)
}

// Dates returns the dates clan ratings are available for.
func (r WoTClanRatings) Dates(p params.Values) (*jason.Value, error) {
	return r.c.Call("clanratings", "dates", p)
}

// Clans returns clan ratings by clan id.
func (r WoTClanRatings) Clans(p params.Values) (*jason.Value, error) {
	return r.c.Call("clanratings", "clans", p)
}

// Neighbors returns the clans adjacent to a clan in a rating list.
func (r WoTClanRatings) Neighbors(p params.Values) (*jason.Value, error) {
	return r.c.Call("clanratings", "neighbors", p)
}

// Top returns the top clans of a rating list.
func (r WoTClanRatings) Top(p params.Values) (*jason.Value, error) {
	return r.c.Call("clanratings", "top", p)
}

// WoTEncyclopedia groups the vehicle and game encyclopedia methods.
type WoTEncyclopedia struct{ c *Client }

// Vehicles returns the vehicle encyclopedia.
func (e WoTEncyclopedia) Vehicles(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "vehicles", p)
}

// VehicleProfile returns the characteristics of one vehicle configuration.
func (e WoTEncyclopedia) VehicleProfile(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "vehicleprofile", p)
}

// VehicleProfiles returns all configurations of a vehicle.
func (e WoTEncyclopedia) VehicleProfiles(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "vehicleprofiles", p)
}

// Achievements returns the achievement dictionary.
func (e WoTEncyclopedia) Achievements(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "achievements", p)
}

// Arenas returns the map dictionary.
func (e WoTEncyclopedia) Arenas(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "arenas", p)
}

// Provisions returns the equipment and consumable dictionary.
func (e WoTEncyclopedia) Provisions(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "provisions", p)
}

// Badges returns the badge dictionary.
func (e WoTEncyclopedia) Badges(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "badges", p)
}

// Info returns encyclopedia metadata such as the game version.
func (e WoTEncyclopedia) Info(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "info", p)
}

// WoTGlobalMap groups the Global Map (clan wars) methods.
type WoTGlobalMap struct{ c *Client }

// Info returns the current Global Map state.
func (g WoTGlobalMap) Info(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "info", p)
}

// Fronts returns front details.
func (g WoTGlobalMap) Fronts(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "fronts", p)
}

// Provinces returns the provinces of a front.
func (g WoTGlobalMap) Provinces(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "provinces", p)
}

// ClanInfo returns clan statistics on the Global Map.
func (g WoTGlobalMap) ClanInfo(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "claninfo", p)
}

// ClanProvinces returns the provinces a clan owns.
func (g WoTGlobalMap) ClanProvinces(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "clanprovinces", p)
}

// ClanBattles returns the battles a clan is scheduled for.
func (g WoTGlobalMap) ClanBattles(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "clanbattles", p)
}

// Seasons returns season details.
func (g WoTGlobalMap) Seasons(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "seasons", p)
}

// Events returns event details.
func (g WoTGlobalMap) Events(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "events", p)
}

// EventClanInfo returns clan progress in an event.
func (g WoTGlobalMap) EventClanInfo(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "eventclaninfo", p)
}

// EventAccountInfo returns player progress in an event.
func (g WoTGlobalMap) EventAccountInfo(p params.Values) (*jason.Value, error) {
	return g.c.Call("globalmap", "eventaccountinfo", p)
}

// WoTRatings groups the player rating methods.
type WoTRatings struct{ c *Client }

// Types returns the available rating types.
func (r WoTRatings) Types(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "types", p)
}

// Dates returns the dates ratings are available for.
func (r WoTRatings) Dates(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "dates", p)
}

// Accounts returns player ratings by account id.
func (r WoTRatings) Accounts(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "accounts", p)
}

// Neighbors returns the players adjacent to a player in a rating list.
func (r WoTRatings) Neighbors(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "neighbors", p)
}

// Top returns the top players of a rating list.
func (r WoTRatings) Top(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "top", p)
}

// WoTStronghold groups the stronghold methods.
type WoTStronghold struct{ c *Client }

// ClanInfo returns general stronghold details of a clan.
func (s WoTStronghold) ClanInfo(p params.Values) (*jason.Value, error) {
	return s.c.Call("stronghold", "claninfo", p)
}

// ClanReserves returns the reserves available to a clan.
func (s WoTStronghold) ClanReserves(p params.Values) (*jason.Value, error) {
	return s.c.Call("stronghold", "clanreserves", p)
}

// WoTTanks groups the per-vehicle statistics methods.
type WoTTanks struct{ c *Client }

// Stats returns per-vehicle player statistics.
func (t WoTTanks) Stats(p params.Values) (*jason.Value, error) {
	return t.c.Call("tanks", "stats", p)
}

// Achievements returns per-vehicle player achievements.
func (t WoTTanks) Achievements(p params.Values) (*jason.Value, error) {
	return t.c.Call("tanks", "achievements", p)
}
