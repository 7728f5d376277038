package repository

import (
	"fmt"
	"io"
	"time"
)

// StoreEvent records a single persistence operation that went wrong. The
// store never surfaces these as errors — gameplay must not depend on
// storage health — so observation is the only way they become visible.
type StoreEvent struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

// Observer receives store events for logging.
type Observer interface {
	OnStoreEvent(event StoreEvent)
}

// LogObserver writes store events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnStoreEvent(event StoreEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] store_%s key=%s err=%v\n", ts, event.Op, event.Key, event.Err)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnStoreEvent(StoreEvent) {}
