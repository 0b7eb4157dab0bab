package wargaming

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/monester/go-wargaming/params"
)

// pathRecorder answers every request with an empty ok envelope and
// remembers the path of the last request.
func pathRecorder(lastPath *string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		*lastPath = r.URL.Path
		fmt.Fprint(w, `{"status":"ok","data":{}}`)
	}
}

func TestWoTTypedMethods(t *testing.T) {
	var lastPath string
	server := httptest.NewServer(http.HandlerFunc(pathRecorder(&lastPath)))
	defer server.Close()

	wot, err := NewWoT(Config{ApplicationID: "demo", BaseURL: server.URL + "/wot/"})
	if err != nil {
		t.Fatalf("NewWoT() returned err: %v", err)
	}

	ids := params.Values{}
	ids.SetInts("account_id", 1)
	clan := params.Values{}
	clan.SetInts("clan_id", 1)

	var calls = []struct {
		call func() error
		path string
	}{
		{func() error { _, err := wot.Account.Tanks(ids); return err }, "/wot/account/tanks/"},
		{func() error { _, err := wot.Account.Achievements(ids); return err }, "/wot/account/achievements/"},
		{func() error { _, err := wot.Tanks.Stats(ids); return err }, "/wot/tanks/stats/"},
		{func() error { _, err := wot.Encyclopedia.Vehicles(nil); return err }, "/wot/encyclopedia/vehicles/"},
		{func() error { _, err := wot.GlobalMap.ClanInfo(clan); return err }, "/wot/globalmap/claninfo/"},
		{func() error { _, err := wot.Stronghold.ClanReserves(clan); return err }, "/wot/stronghold/clanreserves/"},
		{func() error { _, err := wot.ClanRatings.Types(nil); return err }, "/wot/clanratings/types/"},
	}

	for _, tt := range calls {
		if err := tt.call(); err != nil {
			t.Fatalf("call for %s returned err: %v", tt.path, err)
		}
		if lastPath != tt.path {
			t.Errorf("request went to %q, want %q", lastPath, tt.path)
		}
	}
}

// Every game serves account/list; the typed clients must agree on where
// it lives.
func TestAllGamesAccountList(t *testing.T) {
	for _, game := range []Game{GameWGN, GameWoT, GameWoWS, GameWoWP, GameWoTB, GameWoTX} {
		var lastPath string
		server := httptest.NewServer(http.HandlerFunc(pathRecorder(&lastPath)))

		client, err := New(game, Config{
			ApplicationID: "demo",
			BaseURL:       fmt.Sprintf("%s/%s/", server.URL, game),
		})
		if err != nil {
			t.Fatalf("New(%s) returned err: %v", game, err)
		}

		if _, err := client.Call("account", "list", params.Values{"search": "SerB"}); err != nil {
			t.Errorf("%s account.list returned err: %v", game, err)
		}
		if want := fmt.Sprintf("/%s/account/list/", game); lastPath != want {
			t.Errorf("%s account.list went to %q, want %q", game, lastPath, want)
		}

		server.Close()
	}
}
