// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// Poster is the predicate function for poster builders.
type Poster func(*sql.Selector)

// PosterMetadata is the predicate function for postermetadata builders.
type PosterMetadata func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// ZenodoToken is the predicate function for zenodotoken builders.
type ZenodoToken func(*sql.Selector)
