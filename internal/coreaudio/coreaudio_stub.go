//go:build !darwin

package coreaudio

// SystemService returns a stub on platforms without CoreAudio. Every call
// fails with ErrUnsupported.
func SystemService() Service {
	return stubService{}
}

type stubService struct{}

func (stubService) ReadUint32(DeviceID, PropertyAddress) (uint32, error) {
	return 0, ErrUnsupported
}

func (stubService) ReadFloat32(DeviceID, PropertyAddress) (float32, error) {
	return 0, ErrUnsupported
}

func (stubService) WriteUint32(DeviceID, PropertyAddress, uint32) error {
	return ErrUnsupported
}

func (stubService) WriteFloat32(DeviceID, PropertyAddress, float32) error {
	return ErrUnsupported
}

func (stubService) Has(DeviceID, PropertyAddress) bool {
	return false
}
