package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vmorsell/volctl"
	"go.uber.org/zap"
)

const usage = `usage: volctl [command]

commands:
  status   print the default output device's volume and mute state (default)
  set N    set the volume to N percent (0-100)
  mute     mute the device
  unmute   unmute the device
  toggle   toggle the mute state

set VOLCTL_DEBUG=1 for debug logging`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "volctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts []volctl.Option
	if os.Getenv("VOLCTL_DEBUG") != "" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()
		opts = append(opts, volctl.WithLogger(logger))
	}

	cmd := "status"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	case "status", "set", "mute", "unmute", "toggle":
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}

	dev, err := volctl.GetDefault(opts...)
	if err != nil {
		return err
	}

	switch cmd {
	case "set":
		if len(args) < 2 {
			return fmt.Errorf("set requires a percentage argument")
		}
		pct, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid percentage %q", args[1])
		}
		return dev.SetVolume(pct)
	case "mute":
		return dev.SetMute(true)
	case "unmute":
		return dev.SetMute(false)
	case "toggle":
		muted, err := dev.Muted()
		if err != nil {
			return err
		}
		return dev.SetMute(!muted)
	default:
		return status(dev)
	}
}

func status(dev *volctl.AudioOutputDevice) error {
	fmt.Println("🔊 volctl")
	fmt.Println("────────────────────────────")
	fmt.Printf("Device ID: %d\n", dev.ID())

	vol, err := dev.Volume()
	if err != nil {
		return err
	}
	fmt.Printf("Volume:    %d%%\n", vol)

	muted, err := dev.Muted()
	if err != nil {
		return err
	}
	fmt.Printf("Muted:     %t\n", muted)
	return nil
}
