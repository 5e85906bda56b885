// Package utils provides shared helpers for the transit aggregation core.
//
// It contains:
//   - Station-name normalization for fuzzy matching
//   - Wall-clock time parsing for feeds that only report a clock time
package utils
