package wargaming

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/monester/go-wargaming/params"
)

func TestWGNTypedMethods(t *testing.T) {
	var lastPath string
	server := httptest.NewServer(http.HandlerFunc(pathRecorder(&lastPath)))
	defer server.Close()

	wgn, err := NewWGN(Config{ApplicationID: "demo", BaseURL: server.URL + "/wgn/"})
	if err != nil {
		t.Fatalf("NewWGN() returned err: %v", err)
	}

	account := params.Values{}
	account.SetInts("account_id", 1)

	var calls = []struct {
		call func() error
		path string
	}{
		{func() error { _, err := wgn.Account.Info(account); return err }, "/wgn/account/info/"},
		{func() error { _, err := wgn.Clans.MembersInfo(account); return err }, "/wgn/clans/membersinfo/"},
		{func() error { _, err := wgn.Servers.Info(nil); return err }, "/wgn/servers/info/"},
		{func() error { _, err := wgn.WGTV.Videos(nil); return err }, "/wgn/wgtv/videos/"},
		{func() error {
			_, err := wgn.Auth.Prolongate(params.Values{"access_token": "t"})
			return err
		}, "/wgn/auth/prolongate/"},
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

func TestWGNAuthRequiresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request issued despite missing access token: %s", r.URL)
	}))
	defer server.Close()

	wgn, err := NewWGN(Config{ApplicationID: "demo", BaseURL: server.URL + "/wgn/"})
	if err != nil {
		t.Fatalf("NewWGN() returned err: %v", err)
	}

	_, err = wgn.Auth.Logout(params.Values{})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}
