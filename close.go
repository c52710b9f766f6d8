package proxi

// Close releases the loaded database. Subsequent loads and searches fail
// with ErrClosed; in-flight searches finish against the snapshot they
// started with. Close is idempotent.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	if e.closed.Swap(true) {
		return nil
	}
	e.store.Store(nil)
	return nil
}
