// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Cohort is the predicate function for cohort builders.
type Cohort func(*sql.Selector)

// FeatureRecord is the predicate function for featurerecord builders.
type FeatureRecord func(*sql.Selector)
