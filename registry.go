package wargaming

import (
	"fmt"
	"sort"
	"strings"
)

// Game identifies a Wargaming.net project exposed through the public API.
type Game string

const (
	GameWGN  Game = "wgn"  // Wargaming.net common account API
	GameWoT  Game = "wot"  // World of Tanks
	GameWoWS Game = "wows" // World of Warships
	GameWoWP Game = "wowp" // World of Warplanes
	GameWoTB Game = "wotb" // World of Tanks Blitz
	GameWoTX Game = "wotx" // World of Tanks Console
)

// Region identifies an API cluster.
type Region string

const (
	RegionRU   Region = "ru"
	RegionEU   Region = "eu"
	RegionNA   Region = "na"
	RegionAsia Region = "asia"
	RegionXbox Region = "xbox" // World of Tanks Console only
	RegionPS4  Region = "ps4"  // World of Tanks Console only
)

// methodDesc describes a single API method: the relative path it is
// served under and the parameters the server requires for it.
type methodDesc struct {
	path     string
	required []string
}

// endpoints is the full category -> method table per game. The per-game
// tables live in the game files (wot.go, wgn.go, ...).
var endpoints = map[Game]map[string]map[string]methodDesc{
	GameWGN:  wgnEndpoints,
	GameWoT:  wotEndpoints,
	GameWoWS: wowsEndpoints,
	GameWoWP: wowpEndpoints,
	GameWoTB: wotbEndpoints,
	GameWoTX: wotxEndpoints,
}

var regions = map[Region]bool{
	RegionRU:   true,
	RegionEU:   true,
	RegionNA:   true,
	RegionAsia: true,
	RegionXbox: true,
	RegionPS4:  true,
}

func allowedGames() string {
	names := make([]string, 0, len(endpoints))
	for game := range endpoints {
		names = append(names, string(game))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func allowedRegions() string {
	names := make([]string, 0, len(regions))
	for region := range regions {
		names = append(names, string(region))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// apiURL returns the base URL every method of the given game and region
// is served under. All projects, warships and warplanes included, are
// served from the api.worldoftanks host family.
func apiURL(game Game, region Region) (string, error) {
	if _, ok := endpoints[game]; !ok {
		return "", ValidationError{fmt.Sprintf("game %q is not in allowed list: %s", game, allowedGames())}
	}
	if !regions[region] {
		return "", ValidationError{fmt.Sprintf("region %q is not in allowed list: %s", region, allowedRegions())}
	}
	return fmt.Sprintf("https://api.worldoftanks.%s/%s/", region, game), nil
}

// Endpoints returns the category -> method -> relative path table of the
// given game. The result is a copy; modifying it has no effect on any
// client. Unknown games yield a ValidationError.
func Endpoints(game Game) (map[string]map[string]string, error) {
	table, ok := endpoints[game]
	if !ok {
		return nil, ValidationError{fmt.Sprintf("game %q is not in allowed list: %s", game, allowedGames())}
	}

	out := make(map[string]map[string]string, len(table))
	for category, methods := range table {
		out[category] = make(map[string]string, len(methods))
		for method, desc := range methods {
			out[category][method] = desc.path
		}
	}
	return out, nil
}

// lookup resolves a category/method pair for a game. All misses are
// ValidationErrors, reported without any request being made.
func lookup(game Game, category, method string) (methodDesc, error) {
	table, ok := endpoints[game]
	if !ok {
		return methodDesc{}, ValidationError{fmt.Sprintf("game %q is not in allowed list: %s", game, allowedGames())}
	}
	methods, ok := table[category]
	if !ok {
		return methodDesc{}, ValidationError{fmt.Sprintf("unknown category %q for game %q", category, game)}
	}
	desc, ok := methods[method]
	if !ok {
		return methodDesc{}, ValidationError{fmt.Sprintf("unknown method %q in category %q for game %q", method, category, game)}
	}
	return desc, nil
}
