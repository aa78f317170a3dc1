// Package serpclean normalizes raw web search results into clean,
// bounded, metadata-annotated text suitable for LLM consumption. It
// selects an extraction strategy per URL, detects multi-article
// aggregator pages, enforces character/token budgets, and infers
// publication metadata from the cleaned text.
//
// This package contains domain types, interfaces, and the pure
// normalization algorithms following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., readability/, trafilatura/, sqlite/).
package serpclean
