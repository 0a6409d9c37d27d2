package security

import (
	"archive/zip"
	"fmt"
)

// ArchiveCheckResult contains the results of a zoneinfo archive pre-scan.
type ArchiveCheckResult struct {
	Reason                string
	TotalUncompressedSize uint64
	LargestEntrySize      uint64
	EntryCount            int
	MaxCompressionRatio   float64
	IsSafe                bool
}

// Limits configures the thresholds applied to time zone data.
type Limits struct {
	MaxArchiveBytes     uint64  // default 16 MiB
	MaxZoneCount        int     // default 4096
	MaxCompressionRatio float64 // default 100.0
	MaxZoneBytes        uint64  // one TZif file, default 256 KiB
}

// DefaultLimits returns the default limits. A complete IANA database has
// about 600 zones of a few KiB each, well inside them.
func DefaultLimits() Limits {
	return Limits{
		MaxArchiveBytes:     16 * 1024 * 1024,
		MaxZoneCount:        4096,
		MaxCompressionRatio: 100.0,
		MaxZoneBytes:        256 * 1024,
	}
}

// CheckArchive pre-scans a zip archive's central directory.
// Does NOT read any content - only metadata.
//
// Returns a result with IsSafe=false and a Reason if any limit is exceeded.
func CheckArchive(r *zip.Reader, limits Limits) *ArchiveCheckResult {
	result := &ArchiveCheckResult{
		IsSafe: true,
	}

	var entries int
	for _, f := range r.File {
		// Directories hold no zone data.
		if f.FileInfo().IsDir() {
			continue
		}
		entries++

		result.TotalUncompressedSize += f.UncompressedSize64
		if f.UncompressedSize64 > result.LargestEntrySize {
			result.LargestEntrySize = f.UncompressedSize64
		}

		// Zero compressed size would divide by zero.
		if f.CompressedSize64 > 0 {
			ratio := float64(f.UncompressedSize64) / float64(f.CompressedSize64)
			if ratio > result.MaxCompressionRatio {
				result.MaxCompressionRatio = ratio
			}
		}
	}
	result.EntryCount = entries

	switch {
	case result.TotalUncompressedSize > limits.MaxArchiveBytes:
		result.IsSafe = false
		result.Reason = fmt.Sprintf(
			"total uncompressed size (%d bytes) exceeds limit (%d bytes)",
			result.TotalUncompressedSize,
			limits.MaxArchiveBytes,
		)
	case entries > limits.MaxZoneCount:
		result.IsSafe = false
		result.Reason = fmt.Sprintf(
			"zone count (%d) exceeds limit (%d)",
			entries,
			limits.MaxZoneCount,
		)
	case result.LargestEntrySize > limits.MaxZoneBytes:
		result.IsSafe = false
		result.Reason = fmt.Sprintf(
			"zone size (%d bytes) exceeds limit (%d bytes)",
			result.LargestEntrySize,
			limits.MaxZoneBytes,
		)
	case result.MaxCompressionRatio > limits.MaxCompressionRatio:
		result.IsSafe = false
		result.Reason = fmt.Sprintf(
			"compression ratio (%.2f:1) exceeds limit (%.2f:1)",
			result.MaxCompressionRatio,
			limits.MaxCompressionRatio,
		)
	}

	return result
}
