// Package model defines the normalized in-memory representation of a page's
// text geometry: spans, lines, and blocks owned by a page through per-page
// arenas, plus per-page font usage statistics.
//
// The model is produced by an external page-extraction engine and consumed
// by the layout package. Entities are created fresh for each conversion run
// and discarded once markdown is emitted; nothing here persists or caches.
//
// Style flags use the extraction engine's bit values verbatim (bold = 16,
// italic = 2). These are wire-compatibility constants and must not be
// remapped.
package model
