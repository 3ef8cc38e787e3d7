// Package render turns a published feed into the card list shown on the
// homepage. It only reads the feed it is given, so one snapshot can be
// presented by any number of concurrent page renders.
package render
