package snakex

import "github.com/vovakirdan/snake-extreme/internal/core"

// stepPause advances the pause machine. It runs every tick, paused or not.
func (d *Director) stepPause() {
	switch d.pause {
	case Resumed:
		if !d.pauseLatch.Pressed() {
			return
		}
		d.dimmer.Dim()
		d.board.Open()
		d.volume.FadeTo(d.cfg.Audio.DuckVolume)
		d.emit(core.SoundPause)
		d.setPause(Pausing)

	case Pausing:
		if d.dimmer.Dimmed() && d.board.Opened() {
			d.setPause(Paused)
		}

	case Paused:
		if !d.anyLatch.Pressed() {
			return
		}
		d.dimmer.Brighten()
		d.board.Close()
		d.volume.FadeTo(d.cfg.Audio.MusicVolume)
		d.emit(core.SoundResume)
		d.setPause(Resuming)

	case Resuming:
		if d.dimmer.Clear() && d.board.Closed() {
			d.setPause(Resumed)
		}
	}
}
