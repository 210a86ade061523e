package headervec

type vecError string

var _ error = vecError("")

func (err vecError) Error() string {
	return string(err)
}

const (
	ErrIndexOutOfRange  = vecError("insertion index is out of range")
	ErrTruncateLength   = vecError("new length exceeds current length")
	ErrNegativeCapacity = vecError("capacity must not be negative")
	ErrFreed            = vecError("header vector has been freed or moved")
)
