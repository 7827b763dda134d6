package cli

// localizedError carries a translated message for the user while keeping
// the underlying error available to errors.As.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string {
	return e.msg
}

func (e *localizedError) Unwrap() error {
	return e.err
}

// reportedError marks an error that was already printed by the command.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}
