package sqlite

// schema contains the database schema DDL.
const schema = `
CREATE TABLE IF NOT EXISTS devices (
    id TEXT PRIMARY KEY,
    ip TEXT NOT NULL,
    name TEXT,
    type TEXT DEFAULT 'pixoo64',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    last_seen DATETIME
);
CREATE INDEX IF NOT EXISTS idx_devices_last_seen ON devices(last_seen);
`
