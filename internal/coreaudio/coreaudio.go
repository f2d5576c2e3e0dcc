// Package coreaudio provides typed access to the CoreAudio object-property API.
package coreaudio

import (
	"errors"
	"fmt"
)

// DeviceID is an audio object identifier assigned by the OS. It denotes a live
// audio object, not owned memory.
type DeviceID uint32

const (
	// SystemObjectID is the well-known ID of the audio system object
	// (kAudioObjectSystemObject).
	SystemObjectID DeviceID = 1

	// UnknownObjectID is reported by the OS when no object matches a query
	// (kAudioObjectUnknown).
	UnknownObjectID DeviceID = 0
)

// Property selectors and scopes, as four-character codes.
const (
	SelectorDefaultOutputDevice uint32 = 0x644F7574 // 'dOut'
	SelectorVolumeScalar        uint32 = 0x766F6C6D // 'volm'
	SelectorMute                uint32 = 0x6D757465 // 'mute'

	ScopeGlobal uint32 = 0x676C6F62 // 'glob'
	ScopeOutput uint32 = 0x6F757470 // 'outp'

	// ElementMaster addresses the device-wide element rather than an
	// individual channel.
	ElementMaster uint32 = 0
)

// ErrUnsupported is returned by the system service on platforms without
// CoreAudio.
var ErrUnsupported = errors.New("coreaudio is only available on macOS")

// PropertyAddress identifies a property on an audio object.
type PropertyAddress struct {
	Selector uint32
	Scope    uint32
	Element  uint32
}

// DefaultOutputDeviceAddress addresses the system object's default output
// device property.
func DefaultOutputDeviceAddress() PropertyAddress {
	return PropertyAddress{
		Selector: SelectorDefaultOutputDevice,
		Scope:    ScopeGlobal,
		Element:  ElementMaster,
	}
}

// VolumeAddress addresses the output volume scalar of the given channel
// element.
func VolumeAddress(element uint32) PropertyAddress {
	return PropertyAddress{
		Selector: SelectorVolumeScalar,
		Scope:    ScopeOutput,
		Element:  element,
	}
}

// MuteAddress addresses the mute flag of the given channel element.
func MuteAddress(element uint32) PropertyAddress {
	return PropertyAddress{
		Selector: SelectorMute,
		Scope:    ScopeOutput,
		Element:  element,
	}
}

// Service is the property access surface of the OS audio subsystem. The
// darwin implementation calls into CoreAudio; tests substitute their own.
type Service interface {
	ReadUint32(id DeviceID, addr PropertyAddress) (uint32, error)
	ReadFloat32(id DeviceID, addr PropertyAddress) (float32, error)
	WriteUint32(id DeviceID, addr PropertyAddress, value uint32) error
	WriteFloat32(id DeviceID, addr PropertyAddress, value float32) error
	Has(id DeviceID, addr PropertyAddress) bool
}

// OSStatus is a nonzero CoreAudio result code.
type OSStatus int32

func (s OSStatus) Error() string {
	if cc, ok := fourCCString(uint32(s)); ok {
		return fmt.Sprintf("coreaudio: status %d ('%s')", int32(s), cc)
	}
	return fmt.Sprintf("coreaudio: status %d", int32(s))
}

// fourCCString renders a code back to its character form when all four bytes
// are printable ASCII.
func fourCCString(v uint32) (string, bool) {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return "", false
		}
	}
	return string(b), true
}
