package volctl

import (
	"errors"
	"fmt"
)

// ErrNoDefaultDevice is returned (wrapped in a DeviceLookupError) when the OS
// reports that no default output device is configured.
var ErrNoDefaultDevice = errors.New("no default output device configured")

// ErrNoVolumeControl is returned (wrapped) when the device exposes no
// volume-capable channels.
var ErrNoVolumeControl = errors.New("device has no volume control")

// DeviceLookupError reports a failure to resolve the default output device:
// no device is configured, or the OS audio service call itself failed.
type DeviceLookupError struct {
	Err error
}

func (e *DeviceLookupError) Error() string {
	return fmt.Sprintf("look up default output device: %v", e.Err)
}

func (e *DeviceLookupError) Unwrap() error { return e.Err }

// PropertyReadError reports a failed device property read: the device is gone
// or no longer valid, or it does not expose the requested property.
type PropertyReadError struct {
	Prop string
	Err  error
}

func (e *PropertyReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Prop, e.Err)
}

func (e *PropertyReadError) Unwrap() error { return e.Err }

// PropertyWriteError reports a failed device property write.
type PropertyWriteError struct {
	Prop string
	Err  error
}

func (e *PropertyWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Prop, e.Err)
}

func (e *PropertyWriteError) Unwrap() error { return e.Err }
