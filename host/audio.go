package host

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const sampleRate = 44100

// Audio drains the APU's sample channel into a portaudio output stream.
// Since spec §1 explicitly defers audio synthesis, the channel only ever
// carries silence (internal/machine.APU.Step sends 0) — this still keeps
// the device open and the stack wired end to end, the way the teacher's
// ui/audio.go does for its (non-silent) sine stub.
type Audio struct {
	stream  *portaudio.Stream
	channel chan float32
}

// NewAudio opens the default output stream and drains channel into it. A
// failure here is exit code 1, the same "host library init failure" class
// as the windowing init.
func NewAudio(channel chan float32) (*Audio, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("host: portaudio init: %w", err)
	}
	a := &Audio{channel: channel}
	cb := func(out []float32) {
		for i := range out {
			select {
			case x := <-a.channel:
				out[i] = x
			default:
				out[i] = 0
			}
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, cb)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("host: open audio stream: %w", err)
	}
	a.stream = stream
	if err := stream.Start(); err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("host: start audio stream: %w", err)
	}
	return a, nil
}

func (a *Audio) Close() {
	a.stream.Close()
	portaudio.Terminate()
}
