// Package notifications carries progress and status events out of the
// pipeline. The core publishes into a one-way channel; whatever owns the
// user-facing surface consumes it. An optional ntfy push service announces
// terminal outcomes to a configured topic.
package notifications
