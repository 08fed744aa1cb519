// Package lifecycle holds shared constants for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook may take to start or stop a component.
const DefaultTimeout = 10 * time.Second
