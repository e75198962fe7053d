package telemetry

import "database/sql"

// initSchema creates the snapshots table if needed.
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS snapshots (
            timestamp INTEGER PRIMARY KEY,
            active_profile TEXT,
            profile_on_ac TEXT,
            profile_on_battery TEXT,
            keyboard_brightness TEXT,
            charge_limit INTEGER,
            slash_enabled INTEGER,
            slash_brightness INTEGER,
            slash_interval INTEGER,
            slash_mode TEXT,
            missing_fields TEXT
        )
    `)
	return err
}
