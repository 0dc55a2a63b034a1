package app

import (
	_ "embed"
	"encoding/json"

	"github.com/echoip/echoip/core/router"
	"github.com/echoip/echoip/core/wire"
	"github.com/echoip/echoip/pkg/clientip"
)

// The index page is compiled into the binary; the server has no runtime file
// dependencies.
//
//go:embed index.html
var indexPage []byte

// ipInfo is the payload served on /ip.
type ipInfo struct {
	PublicIP  string `json:"public_ip"`
	PeerIP    string `json:"peer_ip"`
	Forwarded string `json:"forwarded"`
	UserAgent string `json:"user_agent"`
}

// NewRouter builds the application's route table.
func NewRouter() *router.Router {
	r := router.New()
	r.Get("/", indexHandler)
	r.Get("/ip", ipInfoHandler)
	return r
}

// indexHandler serves the embedded diagnostic page.
func indexHandler(*wire.Request) wire.Response {
	return wire.Response{
		Status:      wire.StatusOK,
		ContentType: wire.ContentTypeHTML,
		Body:        indexPage,
	}
}

// ipInfoHandler reports the caller's apparent IP address and connection
// metadata as JSON. The public IP honors proxy headers; the peer IP is always
// the raw transport address.
func ipInfoHandler(req *wire.Request) wire.Response {
	info := ipInfo{
		PublicIP:  clientip.FromRequest(req.Header, req.PeerIP),
		PeerIP:    req.PeerIP,
		Forwarded: req.Header.Get("x-forwarded-for"),
		UserAgent: req.Header.Get("user-agent"),
	}
	if info.Forwarded == "" {
		info.Forwarded = "none"
	}
	if info.UserAgent == "" {
		info.UserAgent = "unknown"
	}

	body, err := json.Marshal(info)
	if err != nil {
		body = []byte("{}")
	}

	return wire.Response{
		Status:      wire.StatusOK,
		ContentType: wire.ContentTypeJSON,
		Body:        body,
	}
}
