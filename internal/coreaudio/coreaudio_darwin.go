//go:build darwin

package coreaudio

/*
#cgo LDFLAGS: -framework CoreAudio
#include <CoreAudio/CoreAudio.h>
*/
import "C"

import "unsafe"

// SystemService returns the property service backed by the CoreAudio hardware
// abstraction layer.
func SystemService() Service {
	return systemService{}
}

type systemService struct{}

func (systemService) ReadUint32(id DeviceID, addr PropertyAddress) (uint32, error) {
	var value C.UInt32
	size := C.UInt32(unsafe.Sizeof(value))
	caddr := addr.c()
	status := C.AudioObjectGetPropertyData(C.AudioObjectID(id), &caddr, 0, nil, &size, unsafe.Pointer(&value))
	if status != C.kAudioHardwareNoError {
		return 0, OSStatus(status)
	}
	return uint32(value), nil
}

func (systemService) ReadFloat32(id DeviceID, addr PropertyAddress) (float32, error) {
	var value C.Float32
	size := C.UInt32(unsafe.Sizeof(value))
	caddr := addr.c()
	status := C.AudioObjectGetPropertyData(C.AudioObjectID(id), &caddr, 0, nil, &size, unsafe.Pointer(&value))
	if status != C.kAudioHardwareNoError {
		return 0, OSStatus(status)
	}
	return float32(value), nil
}

func (systemService) WriteUint32(id DeviceID, addr PropertyAddress, value uint32) error {
	cvalue := C.UInt32(value)
	caddr := addr.c()
	status := C.AudioObjectSetPropertyData(C.AudioObjectID(id), &caddr, 0, nil, C.UInt32(unsafe.Sizeof(cvalue)), unsafe.Pointer(&cvalue))
	if status != C.kAudioHardwareNoError {
		return OSStatus(status)
	}
	return nil
}

func (systemService) WriteFloat32(id DeviceID, addr PropertyAddress, value float32) error {
	cvalue := C.Float32(value)
	caddr := addr.c()
	status := C.AudioObjectSetPropertyData(C.AudioObjectID(id), &caddr, 0, nil, C.UInt32(unsafe.Sizeof(cvalue)), unsafe.Pointer(&cvalue))
	if status != C.kAudioHardwareNoError {
		return OSStatus(status)
	}
	return nil
}

func (systemService) Has(id DeviceID, addr PropertyAddress) bool {
	caddr := addr.c()
	return C.AudioObjectHasProperty(C.AudioObjectID(id), &caddr) != 0
}

func (a PropertyAddress) c() C.AudioObjectPropertyAddress {
	return C.AudioObjectPropertyAddress{
		mSelector: C.AudioObjectPropertySelector(a.Selector),
		mScope:    C.AudioObjectPropertyScope(a.Scope),
		mElement:  C.AudioObjectPropertyElement(a.Element),
	}
}
