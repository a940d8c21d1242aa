// Package completion suggests values for a pattern being typed.
//
// Given a buffer and cursor it detects the active pattern context on the
// current line (@date, #priority, +assignee, [tag, color:), ranks the
// static candidate table for that type against the typed query, and
// caches results with a short TTL keyed by (type, query).
package completion
