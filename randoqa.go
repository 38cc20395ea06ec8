// Package randoqa provides a site-specific question-answering backend
// for a French hiking-photo gallery. It crawls the site with a headless
// browser, extracts structured facts (dates, altitudes, locations,
// feature tags, project listings) from rendered pages, persists a flat
// JSON document store, and answers free-text French questions through a
// rule cascade with a hosted-LLM fallback.
//
// This package contains domain types, interfaces and pure heuristics
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency or concern
// (e.g., rod/, goquery/, fs/, gemini/, crawl/, answer/).
package randoqa
