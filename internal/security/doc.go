// Package security validates untrusted input before it reaches the file
// system: time zone names used as paths inside a zoneinfo directory, and
// zoneinfo archives that could expand into far more data than expected.
package security
