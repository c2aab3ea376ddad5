package forge

// InitError reports a repository acquisition failure: a bad local path, a
// failed clone, or a remote create that was refused.
type InitError struct {
	Err error
}

func (e *InitError) Error() string { return "initialize repository: " + e.Err.Error() }
func (e *InitError) Unwrap() error { return e.Err }

// ForgeError reports a failure while fabricating commits: no resolvable
// identity, marker file I/O, or an object write.
type ForgeError struct {
	Err error
}

func (e *ForgeError) Error() string { return "forge commits: " + e.Err.Error() }
func (e *ForgeError) Unwrap() error { return e.Err }

// PushError reports a failure pushing to the remote, including refspec and
// remote-name validation that happens before any network traffic.
type PushError struct {
	Err error
}

func (e *PushError) Error() string { return "push: " + e.Err.Error() }
func (e *PushError) Unwrap() error { return e.Err }
