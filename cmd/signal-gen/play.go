// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/pion/logging"

	"github.com/ik5/stepir/signalgen"
)

const drainPoll = 50 * time.Millisecond

// play streams pcm through the default output device as mono signed
// 16-bit little-endian, in chunks of 20 ms.
func play(pcm []int16, sampleRate, loops int, log logging.LeveledLogger) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio output: %w", err)
	}
	<-ready

	chunk := signalgen.ChunkFrames(sampleRate)
	reader := signalgen.NewLoopReader(pcm, loops, chunk)

	player := ctx.NewPlayer(reader)
	defer player.Close()

	if loops == 0 {
		log.Info("playing until interrupted")
	} else {
		log.Infof("playing %d time(s)", loops)
	}

	player.Play()

	lastLoop := 0
	for player.IsPlaying() {
		time.Sleep(drainPoll)
		if n := reader.Loops(); n != lastLoop {
			lastLoop = n
			log.Debugf("finished pass %d", n)
		}
	}

	return player.Err()
}
