// Package feed builds the latest-publications feed at build time.
//
// Aggregate filters loaded documents down to the ones that can be shown as a
// card (title, date, description and image all present, date parseable),
// orders them newest first with ties kept in input order, and keeps at most
// limit items. FromContent applies it to the "current" content partition and
// yields an empty feed when that partition was never loaded.
//
// Publish and Lookup move the resulting snapshot through a store.Store under
// GlobalDataKey so renders can read it without reaching back into the loader.
package feed
