// Package workspace owns the on-disk layout of a run: the temp and processed
// clip directories, the concat playlist, and the final output path, all
// derived from the record file's name and directory. Cleanup runs on every
// exit path and is best-effort; a lock file keeps two runs from sharing the
// same workspace.
package workspace
