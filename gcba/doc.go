// Package gcba implements the client for the Buenos Aires city transit API
// (apitransporte.buenosaires.gob.ar), which serves the Subte real-time
// forecast feed and the Subte service-alert feed.
//
// Authentication is two query parameters (client_id, client_secret) appended
// to every request. The forecast feed uses a bespoke JSON shape; the alert
// feed is standard GTFS-Realtime rendered as JSON and is decoded into
// gtfs-realtime-bindings messages with protojson.
package gcba
