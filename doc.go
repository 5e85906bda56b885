// Package batransit aggregates real-time Buenos Aires transit data from two
// upstream providers: the GCBA city API for the Subte network and the SOFSE
// API for the metropolitan train network. It resolves free-text station
// queries, merges arrival predictions from both systems into a single
// ordered list, and reports per-line service status.
package batransit
