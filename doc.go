/*
Package wargaming provides clients for the Wargaming.net public API.

go-wargaming is intended for users who are already familiar with (or are
willing to learn) the Wargaming.net API. It is intended to make dealing
with the API more convenient, but not to hide it. The API reference
lives at https://developers.wargaming.net/.

Basic usage

In the example below, basic usage of go-wargaming is shown.

	// Initialize a typed client with your application id. Keys are
	// issued at https://developers.wargaming.net/applications/.
	wot, err := wargaming.NewWoT(wargaming.Config{
		ApplicationID: "demo",
		Region:        wargaming.RegionEU,
	})
	if err != nil {
		panic(err) // Bad configuration
	}

	accounts, err := wot.Account.List(params.Values{
		"search": "SerB",
	})
	if err != nil {
		panic(err)
	}

Every game served by the API has a typed client (WGN, WoT, WoWS, WoWP,
WoTB, WoTX) built with the corresponding constructor (NewWGN, NewWoT,
...). The typed clients expose the two-level category/method namespace
of the API as category fields with one Go method per API method, e.g.
wot.Account.List for account/list. For methods this library has no
wrapper for, the Call method on the underlying Client takes the
category and method names directly and behaves identically.

Method responses are the "data" field of the API's response envelope,
returned verbatim as a *jason.Value (github.com/antonholmquist/jason).
The payload shape is the remote API's concern and differs per method;
jason's accessors make traversing it straightforward.

params.Values

params.Values is similar to (and a fork of) the standard library's
net/url.Values. The reason why params.Values is used instead is
that url.Values is based on a map[string][]string, rather than a
map[string]string. The Wargaming API does not use multiple keys when
multiple values for the same key are required. Instead, one key is used
and the values are separated by commas, e.g. account_id=1,2,3. The
Add, AddRange and SetInts methods produce that form.

Because of the way type identity works in Go, it is possible for callers
to pass a plain map[string]string rather than a params.Values. It is
only necessary for users to use params.Values directly if they wish to
use params.Values's methods. It makes no difference to go-wargaming.

Error handling

If an API call fails it will return an error. Three distinct things can
go wrong: the call can be rejected locally (unknown category or method,
missing required parameter) before any request is made, in which case
the error is a ValidationError; the API can report an error in its
response envelope, in which case the error is an APIError carrying the
remote code, message and field; or the request itself can fail (DNS,
timeout, a body that is not the expected JSON), in which case an
ordinary error describing the transport failure is returned.

The library never retries; every failure is surfaced immediately to
the caller.
*/
package wargaming // import "github.com/monester/go-wargaming"
