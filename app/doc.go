// Package app assembles the echoip application: configuration, the route
// table (index page, /ip JSON endpoint, 404 fallback), and the embedded
// diagnostic page.
package app
