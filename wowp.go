package wargaming

import (
	"github.com/antonholmquist/jason"

	"github.com/monester/go-wargaming/params"
)

// wowpEndpoints lists the World of Warplanes methods known to this library.
var wowpEndpoints = map[string]map[string]methodDesc{
	"account": {
		"list":   {path: "account/list/", required: []string{"search"}},
		"info":   {path: "account/info/", required: []string{"account_id"}},
		"planes": {path: "account/planes/", required: []string{"account_id"}},
	},
	"encyclopedia": {
		"planes":             {path: "encyclopedia/planes/"},
		"planeinfo":          {path: "encyclopedia/planeinfo/", required: []string{"plane_id"}},
		"planemodules":       {path: "encyclopedia/planemodules/", required: []string{"plane_id"}},
		"planespecification": {path: "encyclopedia/planespecification/", required: []string{"plane_id"}},
		"achievements":       {path: "encyclopedia/achievements/"},
		"info":               {path: "encyclopedia/info/"},
	},
	"planes": {
		"stats":        {path: "planes/stats/", required: []string{"account_id"}},
		"achievements": {path: "planes/achievements/", required: []string{"account_id"}},
	},
	"ratings": {
		"types":     {path: "ratings/types/"},
		"dates":     {path: "ratings/dates/", required: []string{"type"}},
		"accounts":  {path: "ratings/accounts/", required: []string{"type", "account_id"}},
		"neighbors": {path: "ratings/neighbors/", required: []string{"type", "account_id", "rank_field"}},
		"top":       {path: "ratings/top/", required: []string{"type", "rank_field"}},
	},
}

// WoWP is a client for the World of Warplanes API.
type WoWP struct {
	*Client

	Account      WoWPAccount
	Encyclopedia WoWPEncyclopedia
	Planes       WoWPPlanes
	Ratings      WoWPRatings
}

// NewWoWP returns a World of Warplanes client configured by cfg.
func NewWoWP(cfg Config) (*WoWP, error) {
	c, err := New(GameWoWP, cfg)
	if err != nil {
		return nil, err
	}
	return &WoWP{
		Client:       c,
		Account:      WoWPAccount{c},
		Encyclopedia: WoWPEncyclopedia{c},
		Planes:       WoWPPlanes{c},
		Ratings:      WoWPRatings{c},
	}, nil
}

// WoWPAccount groups the account methods.
type WoWPAccount struct{ c *Client }

// List searches for players by name.
func (a WoWPAccount) List(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "list", p)
}

// Info returns player details.
func (a WoWPAccount) Info(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "info", p)
}

// Planes returns details on every aircraft a player has flown.
func (a WoWPAccount) Planes(p params.Values) (*jason.Value, error) {
	return a.c.Call("account", "planes", p)
}

// WoWPEncyclopedia groups the warplanes encyclopedia methods.
type WoWPEncyclopedia struct{ c *Client }

// Planes returns the aircraft encyclopedia.
func (e WoWPEncyclopedia) Planes(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "planes", p)
}

// PlaneInfo returns aircraft details.
func (e WoWPEncyclopedia) PlaneInfo(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "planeinfo", p)
}

// PlaneModules returns the modules mountable on an aircraft.
func (e WoWPEncyclopedia) PlaneModules(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "planemodules", p)
}

// PlaneSpecification returns the characteristics of one aircraft configuration.
func (e WoWPEncyclopedia) PlaneSpecification(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "planespecification", p)
}

// Achievements returns the achievement dictionary.
func (e WoWPEncyclopedia) Achievements(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "achievements", p)
}

// Info returns encyclopedia metadata such as the game version.
func (e WoWPEncyclopedia) Info(p params.Values) (*jason.Value, error) {
	return e.c.Call("encyclopedia", "info", p)
}

// WoWPPlanes groups the per-aircraft statistics methods.
type WoWPPlanes struct{ c *Client }

// Stats returns per-aircraft player statistics.
func (pl WoWPPlanes) Stats(p params.Values) (*jason.Value, error) {
	return pl.c.Call("planes", "stats", p)
}

// Achievements returns per-aircraft player achievements.
func (pl WoWPPlanes) Achievements(p params.Values) (*jason.Value, error) {
	return pl.c.Call("planes", "achievements", p)
}

// WoWPRatings groups the player rating methods.
type WoWPRatings struct{ c *Client }

// Types returns the available rating types.
func (r WoWPRatings) Types(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "types", p)
}

// Dates returns the dates ratings are available for.
func (r WoWPRatings) Dates(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "dates", p)
}

// Accounts returns player ratings by account id.
func (r WoWPRatings) Accounts(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "accounts", p)
}

// Neighbors returns the players adjacent to a player in a rating list.
func (r WoWPRatings) Neighbors(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "neighbors", p)
}

// Top returns the top players of a rating list.
func (r WoWPRatings) Top(p params.Values) (*jason.Value, error) {
	return r.c.Call("ratings", "top", p)
}
