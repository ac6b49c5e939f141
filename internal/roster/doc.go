// Package roster provides the typed representation of a scraped squad roster.
//
// The roster package assembles extracted header/cell pairs into Player records
// with explicitly optional numeric fields (nil means the source value was
// absent or unparseable, never zero), derives Birth_Year, Age and Goal_Ratio
// where the source columns allow it, and computes on-demand summary statistics.
package roster
