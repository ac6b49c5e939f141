// Package export serializes rosters to CSV and JSON.
//
// Both formats are pure, order-preserving transformations of the roster:
// the CSV carries a header row of canonical column names and no index
// column, and the JSON is an array of objects with null for missing values.
package export
