package main

import "context"

// staticEvidence stands in for the database-backed summarizer when rendering offline.
type staticEvidence string

func (s staticEvidence) Summarize(context.Context, *int64) *string {
	v := string(s)
	return &v
}
