package wargaming

import (
	"errors"
	"testing"
)

func TestBaseURLPerGameAndRegion(t *testing.T) {
	var urltests = []struct {
		game     Game
		region   Region
		expected string
	}{
		{GameWoT, RegionRU, "https://api.worldoftanks.ru/wot/"},
		{GameWoT, RegionEU, "https://api.worldoftanks.eu/wot/"},
		{GameWGN, RegionNA, "https://api.worldoftanks.na/wgn/"},
		{GameWoWS, RegionAsia, "https://api.worldoftanks.asia/wows/"},
		{GameWoWP, RegionEU, "https://api.worldoftanks.eu/wowp/"},
		{GameWoTB, RegionRU, "https://api.worldoftanks.ru/wotb/"},
		{GameWoTX, RegionXbox, "https://api.worldoftanks.xbox/wotx/"},
		{GameWoTX, RegionPS4, "https://api.worldoftanks.ps4/wotx/"},
	}

	for _, tt := range urltests {
		client, err := New(tt.game, Config{ApplicationID: "demo", Region: tt.region})
		if err != nil {
			t.Fatalf("New(%s, %s) returned err: %v", tt.game, tt.region, err)
		}
		if got := client.BaseURL(); got != tt.expected {
			t.Errorf("BaseURL(%s, %s) = %q, want %q", tt.game, tt.region, got, tt.expected)
		}
	}
}

func TestDefaultRegion(t *testing.T) {
	client, err := New(GameWoT, Config{ApplicationID: "demo"})
	if err != nil {
		t.Fatalf("New() returned err: %v", err)
	}
	if got := client.BaseURL(); got != "https://api.worldoftanks.ru/wot/" {
		t.Errorf("BaseURL() = %q, want the ru cluster", got)
	}
}

func TestUnknownGame(t *testing.T) {
	_, err := New(Game("wofl"), Config{ApplicationID: "demo"})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestUnknownRegion(t *testing.T) {
	_, err := New(GameWoT, Config{ApplicationID: "demo", Region: Region("moon")})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestEmptyApplicationID(t *testing.T) {
	_, err := New(GameWoT, Config{})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestEndpoints(t *testing.T) {
	table, err := Endpoints(GameWoT)
	if err != nil {
		t.Fatalf("Endpoints() returned err: %v", err)
	}
	if got := table["account"]["list"]; got != "account/list/" {
		t.Errorf("account/list path = %q, want account/list/", got)
	}

	// The returned table is a copy.
	table["account"]["list"] = "tampered"
	fresh, err := Endpoints(GameWoT)
	if err != nil {
		t.Fatal(err)
	}
	if got := fresh["account"]["list"]; got != "account/list/" {
		t.Errorf("Endpoints() result shares state with the registry")
	}

	if _, err := Endpoints(Game("wofl")); err == nil {
		t.Error("Endpoints() returned nil error for an unknown game")
	}
}

// Every method table must resolve under the category/method/ layout the
// registry advertises.
func TestTablesSelfConsistent(t *testing.T) {
	for game := range endpoints {
		table, err := Endpoints(game)
		if err != nil {
			t.Fatal(err)
		}
		for category, methods := range table {
			for method, path := range methods {
				if want := category + "/" + method + "/"; path != want {
					t.Errorf("%s %s.%s served at %q, want %q", game, category, method, path, want)
				}
				if _, err := lookup(game, category, method); err != nil {
					t.Errorf("lookup(%s, %s, %s) returned err: %v", game, category, method, err)
				}
			}
		}
	}
}
