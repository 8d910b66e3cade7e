package cmd

// Listen consumes key events from an evdev input device and prints the
// engine's text field state as it changes. Only supported on Linux; other
// platforms get an error from Run.
type Listen struct {
	Device string `arg:"" help:"Input device path, e.g. /dev/input/event3" default:"/dev/input/event0"`
	Grab   bool   `help:"Take exclusive hold of the device" default:"false"`
}
