package errors

// Combine combines errors e & f into a single error. A nil argument is
// ignored; if both are nil the result is nil.
func Combine(e, f error) error {
	switch {
	case e == nil:
		return f
	case f == nil:
		return e
	default:
		return Errorf("%v\n%v", e, f)
	}
}

// Defer is a helper method for deferring error-returning functions
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
