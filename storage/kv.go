package storage

// KV is the durable key-value boundary the stores persist through. It is the
// process-local analog of the browser's localStorage: a handful of named
// slots, read once on startup and rewritten whole on every mutation.
//
// Get decodes the slot's payload into out and reports whether a usable value
// was found. An absent or undecodable slot yields false, never an error, so
// callers fall back to their zero state.
type KV interface {
	Get(slot string, out interface{}) bool
	Set(slot string, v interface{}) error
	Delete(slot string) error
}

// envelope wraps every persisted payload with a schema version so a future
// format change can migrate old slots instead of discarding them.
type envelope struct {
	State   interface{} `json:"state"`
	Version int         `json:"version"`
}

const envelopeVersion = 0
