// Package llmtxt generates LLM-ready text corpora from trees of HTML
// documents. It discovers input files, extracts readable plain text from
// each under a bounded concurrency budget, and deterministically aggregates
// the results into a concatenated corpus (llm.txt) and a structured
// metadata index (pages.json).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/).
package llmtxt
