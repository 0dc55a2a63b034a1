// Package router maps (method, path) pairs to handlers over framed requests.
//
// Matching is exact: no path parameters, wildcards, or middleware chains.
// The connection substrate is method/path-agnostic; routing semantics live
// entirely here.
//
//	r := router.New()
//	r.Get("/ip", ipInfoHandler)
//	resp := r.Dispatch(req)
package router
