package types

// FailureKind identifies the stage of the harness that produced an error.
type FailureKind int

const (
	InvalidArgument FailureKind = iota
	SocketCreation
	Connect
	Read
	Write
)

func (k FailureKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case SocketCreation:
		return "socket creation failed"
	case Connect:
		return "connect failed"
	case Read:
		return "read failed"
	case Write:
		return "write failed"
	default:
		return "unknown failure"
	}
}

// Failure pairs a FailureKind with the underlying OS error.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Kind.String()
	}
	return f.Kind.String() + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}
