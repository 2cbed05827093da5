package api

// SetBodyLimit lowers the response read limit and returns a func restoring it.
func SetBodyLimit(n int64) (restore func()) {
	old := bodyLimit
	bodyLimit = n
	return func() { bodyLimit = old }
}
