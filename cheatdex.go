// Package cheatdex provides a local, CLI-based command cheatsheet search
// tool. It imports cheatsheet archives, learns from the --help and manual
// page output of locally installed commands, indexes everything for ranked
// multilingual full-text search, and answers queries offline.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, bleve/, gse/).
package cheatdex
