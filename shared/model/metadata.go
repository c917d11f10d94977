package model

import "time"

// Metadata carries the store-managed audit timestamps. CreatedAt is set
// once on insert, UpdatedAt on every write.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
