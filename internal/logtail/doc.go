// Package logtail reads the tail of vitrine's log file and formats it for
// humans.
//
// Read uses a ring buffer of maxLines entries, so memory stays bounded by
// the number of lines requested rather than the size of the file. A missing
// file yields no lines and no error. A maxLines of zero or less returns the
// whole file.
//
// Format renders zerolog JSON lines through zerolog's console writer; lines
// that are not JSON are passed through unchanged.
package logtail
