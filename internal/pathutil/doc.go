// Package pathutil holds the path helpers shared by the scanner and the
// reporters: the exclusion predicate applied to root-relative paths, the
// glob helper used by name filters, and the sort key that orders files in
// reports.
//
// All paths handled here are root-relative and use forward slashes,
// regardless of the host operating system. The scan root itself is "".
package pathutil
