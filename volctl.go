// Package volctl queries and sets the mute state and volume level of the
// system default audio output device on macOS.
//
// Every accessor queries the OS live; nothing is cached besides the probed
// channel layout. Changing the default output device after a handle is
// obtained does not affect it — use IsDefault to detect that and GetDefault
// to obtain a fresh handle.
package volctl

import (
	"github.com/vmorsell/volctl/internal/coreaudio"
	"go.uber.org/zap"
)

const (
	// VolumeMin and VolumeMax bound the percentage scale used throughout.
	VolumeMin = 0
	VolumeMax = 100

	// channelProbeMisses is how many elements without a volume property end
	// the channel probe.
	channelProbeMisses = 3
)

// AudioOutputDevice is a handle to the device that was the system default
// output device when GetDefault was called. The zero value is not usable.
type AudioOutputDevice struct {
	id       coreaudio.DeviceID
	channels []uint32
	svc      coreaudio.Service
	logger   *zap.Logger
}

// GetDefault resolves the current default audio output device and probes its
// volume-capable channels. It fails with a *DeviceLookupError when the OS
// audio service is unavailable or reports no default device.
func GetDefault(opts ...Option) (*AudioOutputDevice, error) {
	return getDefault(coreaudio.SystemService(), opts...)
}

func getDefault(svc coreaudio.Service, opts ...Option) (*AudioOutputDevice, error) {
	d := &AudioOutputDevice{
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	id, err := defaultDeviceID(svc)
	if err != nil {
		return nil, &DeviceLookupError{Err: err}
	}
	d.id = id
	d.channels = probeChannels(svc, id)

	d.logger.Debug("resolved default output device",
		zap.Uint32("deviceID", uint32(d.id)),
		zap.Uint32s("channels", d.channels))
	return d, nil
}

// ID returns the OS-assigned identifier of the device.
func (d *AudioOutputDevice) ID() uint32 {
	return uint32(d.id)
}

// Volume returns the device's current output volume as a percentage in
// [0, 100]. The volume scalar is read per channel and averaged, so a small
// precision loss is expected. It fails with a *PropertyReadError when the
// device is gone or exposes no volume control.
func (d *AudioOutputDevice) Volume() (int, error) {
	if len(d.channels) == 0 {
		return 0, &PropertyReadError{Prop: "volume", Err: ErrNoVolumeControl}
	}

	sum := float32(0)
	for _, ch := range d.channels {
		v, err := d.svc.ReadFloat32(d.id, coreaudio.VolumeAddress(ch))
		if err != nil {
			return 0, &PropertyReadError{Prop: "volume", Err: err}
		}
		sum += v * 100
	}
	pct := int(sum / float32(len(d.channels)))

	d.logger.Debug("read volume", zap.Int("percent", pct))
	return pct, nil
}

// Muted reports whether the device is muted. It fails with a
// *PropertyReadError when the device is gone or exposes no mute property.
func (d *AudioOutputDevice) Muted() (bool, error) {
	v, err := d.svc.ReadUint32(d.id, coreaudio.MuteAddress(coreaudio.ElementMaster))
	if err != nil {
		return false, &PropertyReadError{Prop: "mute", Err: err}
	}
	return v != 0, nil
}

// SetVolume sets the device's output volume. pct is clamped to [0, 100]. The
// scalar is written to every volume-capable channel and the first failure
// aborts the write.
func (d *AudioOutputDevice) SetVolume(pct int) error {
	if len(d.channels) == 0 {
		return &PropertyWriteError{Prop: "volume", Err: ErrNoVolumeControl}
	}

	if pct < VolumeMin {
		pct = VolumeMin
	}
	if pct > VolumeMax {
		pct = VolumeMax
	}
	scalar := float32(pct) / 100

	for _, ch := range d.channels {
		if err := d.svc.WriteFloat32(d.id, coreaudio.VolumeAddress(ch), scalar); err != nil {
			return &PropertyWriteError{Prop: "volume", Err: err}
		}
	}

	d.logger.Debug("set volume", zap.Int("percent", pct))
	return nil
}

// SetMute mutes or unmutes the device. The flag is written to every probed
// channel; if any per-channel write fails, a single master-element write is
// attempted instead, since some devices only expose mute on the master
// element.
func (d *AudioOutputDevice) SetMute(mute bool) error {
	value := uint32(0)
	if mute {
		value = 1
	}

	failed := false
	for _, ch := range d.channels {
		if err := d.svc.WriteUint32(d.id, coreaudio.MuteAddress(ch), value); err != nil {
			d.logger.Debug("per-channel mute write failed",
				zap.Uint32("channel", ch), zap.Error(err))
			failed = true
		}
	}
	if failed || len(d.channels) == 0 {
		if err := d.svc.WriteUint32(d.id, coreaudio.MuteAddress(coreaudio.ElementMaster), value); err != nil {
			return &PropertyWriteError{Prop: "mute", Err: err}
		}
	}

	d.logger.Debug("set mute", zap.Bool("mute", mute))
	return nil
}

// IsDefault reports whether this handle still refers to the system default
// output device. Callers can use it to detect a change and obtain a fresh
// handle with GetDefault.
func (d *AudioOutputDevice) IsDefault() (bool, error) {
	id, err := defaultDeviceID(d.svc)
	if err != nil {
		return false, &DeviceLookupError{Err: err}
	}
	return id == d.id, nil
}

func defaultDeviceID(svc coreaudio.Service) (coreaudio.DeviceID, error) {
	v, err := svc.ReadUint32(coreaudio.SystemObjectID, coreaudio.DefaultOutputDeviceAddress())
	if err != nil {
		return 0, err
	}
	id := coreaudio.DeviceID(v)
	if id == coreaudio.UnknownObjectID {
		return 0, ErrNoDefaultDevice
	}
	return id, nil
}

// probeChannels collects the channel elements that expose a volume control,
// walking upward from the master element until channelProbeMisses elements
// have come up empty.
func probeChannels(svc coreaudio.Service, id coreaudio.DeviceID) []uint32 {
	var channels []uint32
	misses := 0
	for element := uint32(0); misses < channelProbeMisses; element++ {
		if svc.Has(id, coreaudio.VolumeAddress(element)) {
			channels = append(channels, element)
		} else {
			misses++
		}
	}
	return channels
}
