package texdisplay

import "errors"

var (
	// ErrInvalidPlacement is returned for non-finite or non-positive sizes.
	ErrInvalidPlacement = errors.New("texdisplay: invalid placement")

	// ErrUnknownAttribute is returned by Program implementations when an
	// attribute is not registered or not active in the linked program.
	ErrUnknownAttribute = errors.New("texdisplay: unknown attribute")

	// ErrUnknownUniform is the uniform counterpart of ErrUnknownAttribute.
	ErrUnknownUniform = errors.New("texdisplay: unknown uniform")

	// ErrUnsupportedType is returned when buffer data or a uniform value
	// does not match what the call accepts.
	ErrUnsupportedType = errors.New("texdisplay: unsupported type")

	// ErrDisposed is returned by Render after Dispose.
	ErrDisposed = errors.New("texdisplay: display disposed")
)
