package main

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/skyline/config"
	"github.com/milk9111/skyline/scene"
)

// doubleClickTicks is the longest gap between two presses on the same tower
// that still counts as a double click.
const doubleClickTicks = 20

type binding struct {
	key ebiten.Key
	cmd scene.Command
}

// Keymap maps keys to camera commands.
type Keymap struct {
	bindings []binding
}

// ParseKeymap resolves ebiten key names ("W", "ArrowLeft") per command name.
func ParseKeymap(keys map[string][]string) (Keymap, error) {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	var km Keymap
	for _, name := range names {
		cmd, ok := scene.ParseCommand(name)
		if !ok {
			return Keymap{}, fmt.Errorf("input: unknown command %q", name)
		}
		for _, keyName := range keys[name] {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return Keymap{}, fmt.Errorf("input: key %q for %s: %w", keyName, name, err)
			}
			km.bindings = append(km.bindings, binding{key: key, cmd: cmd})
		}
	}
	return km, nil
}

// Input turns held keys into repeated commands and tracks pointer presses.
type Input struct {
	Keymap   Keymap
	Delay    int
	Interval int

	tick          int
	lastPressTick int
	lastPressPath string
}

func NewInput(km Keymap, repeat config.KeyRepeatSpec) *Input {
	return &Input{Keymap: km, Delay: repeat.Delay, Interval: repeat.Interval, lastPressTick: -doubleClickTicks - 1}
}

// Commands returns the camera commands due this tick, in binding order.
func (in *Input) Commands() []scene.Command {
	if in == nil {
		return nil
	}
	in.tick++
	var out []scene.Command
	for _, b := range in.Keymap.bindings {
		if shouldRepeat(inpututil.KeyPressDuration(b.key), in.Delay, in.Interval) {
			out = append(out, b.cmd)
		}
	}
	return out
}

// DoubleClick records a press on the tower at path and reports whether it
// completes a double click.
func (in *Input) DoubleClick(path string) bool {
	if in == nil {
		return false
	}
	double := path != "" && path == in.lastPressPath && in.tick-in.lastPressTick <= doubleClickTicks
	in.lastPressPath = path
	in.lastPressTick = in.tick
	if double {
		in.lastPressPath = ""
	}
	return double
}

// shouldRepeat fires on the first tick of a press, then every interval ticks
// once the key has been held for delay ticks.
func shouldRepeat(duration, delay, interval int) bool {
	if duration <= 0 {
		return false
	}
	if duration == 1 {
		return true
	}
	if interval <= 0 || duration < delay {
		return false
	}
	return (duration-delay)%interval == 0
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}
