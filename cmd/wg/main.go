// Command wg looks up player accounts through the Wargaming.net API.
//
// The application id is read from the WG_APPLICATION_ID environment
// variable (a .env file in the working directory is honored); region,
// language and timeout come from WG_REGION, WG_LANGUAGE and WG_TIMEOUT
// or from flags.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/slink-go/logging"
	"github.com/xhit/go-str2duration/v2"

	wargaming "github.com/monester/go-wargaming"
	"github.com/monester/go-wargaming/params"
)

var logger logging.Logger

func main() {
	_ = godotenv.Load(".env") // init env from .env (if found)
	logger = logging.GetLogger("wg")

	game := flag.String("game", "wot", "game to query (wgn, wot, wows, wowp, wotb, wotx)")
	region := flag.String("region", os.Getenv("WG_REGION"), "api region (ru, eu, na, asia, xbox, ps4)")
	language := flag.String("language", os.Getenv("WG_LANGUAGE"), "response language")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wg [flags] <player name>")
		os.Exit(2)
	}

	appID := os.Getenv("WG_APPLICATION_ID")
	if appID == "" {
		logger.Error("WG_APPLICATION_ID is not set")
		os.Exit(1)
	}

	var timeout time.Duration
	if raw := os.Getenv("WG_TIMEOUT"); raw != "" {
		var err error
		timeout, err = str2duration.ParseDuration(raw)
		if err != nil {
			logger.Error("bad WG_TIMEOUT value %q: %v", raw, err)
			os.Exit(1)
		}
	}

	client, err := wargaming.New(wargaming.Game(*game), wargaming.Config{
		ApplicationID: appID,
		Region:        wargaming.Region(*region),
		Language:      *language,
		Timeout:       timeout,
	})
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	logger.Info("[cfg] game: %v", client.Game())
	logger.Info("[cfg] base url: %v", client.BaseURL())

	data, err := client.Call("account", "list", params.Values{"search": flag.Arg(0)})
	if err != nil {
		logger.Error("account search failed: %v", err)
		os.Exit(1)
	}

	accounts, err := data.Array()
	if err != nil {
		logger.Error("unexpected response shape: %v", err)
		os.Exit(1)
	}
	for _, account := range accounts {
		obj, err := account.Object()
		if err != nil {
			continue
		}
		id, _ := obj.GetInt64("account_id")
		nickname, _ := obj.GetString("nickname")
		fmt.Printf("%-12d %s\n", id, nickname)
	}
}
