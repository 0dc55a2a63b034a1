package server

import "time"

// DefaultIOTimeout bounds all reads and writes on one connection. A peer that
// stalls past it is silently abandoned.
const DefaultIOTimeout = 5 * time.Second
