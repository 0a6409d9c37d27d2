// Package tz resolves IANA time zone names to time zones.
//
// A Database is backed by one source: the Go runtime's own lookup chain
// (System), a zoneinfo directory (FromDir) or a zoneinfo.zip archive
// (FromZip, FromZipReader). Zone names are validated before they are used
// as paths, and archives are pre-scanned against security.Limits before
// any zone data is read.
//
// FromDir and FromZip touch the file system and are not available in the
// nofs build; FromZipReader and System are.
package tz
