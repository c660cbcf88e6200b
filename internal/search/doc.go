// Package search provides the query backend for the search_web tool.
//
// Client talks to SerpAPI's Google results endpoint and returns ranked
// {title, link, snippet} items. Failures are returned as plain errors; the
// tool layer decides how they surface in a run (a failed query degrades one
// tool outcome, it never aborts the batch).
package search
