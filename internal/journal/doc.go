// Package journal persists run history in SQLite: one row per run with its
// terminal outcome, and one row per clip with its final status. The journal
// is bookkeeping for the runs command and postmortems; resume decisions are
// made from the processed files on disk, never from here.
package journal
