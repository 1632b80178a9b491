package models

// Counter mirrors the counters table: one row per entity name, holding the
// last sequence id minted for that entity. Never exposed externally.
type Counter struct {
	EntityName string `db:"entity_name"`
	LastID     int64  `db:"last_id"`
}
