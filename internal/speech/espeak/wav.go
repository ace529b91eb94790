package espeak

import (
	"encoding/binary"
	"errors"
)

// pcmFromWAV returns the sample bytes of the data chunk in a RIFF/WAVE
// stream. espeak writes 22050 Hz mono 16-bit PCM; the player is configured
// to match, so only the chunk layout is validated here.
//
// espeak streams to a pipe and cannot seek back to patch sizes, so chunk
// lengths in its output are unreliable; a zero or overlong data size means
// "rest of the stream".
func pcmFromWAV(wav []byte) ([]byte, error) {
	if len(wav) < 12 || string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE stream")
	}

	off := 12
	for off+8 <= len(wav) {
		id := string(wav[off : off+4])
		size := int(binary.LittleEndian.Uint32(wav[off+4 : off+8]))
		body := off + 8

		if id == "data" {
			if size <= 0 || body+size > len(wav) {
				size = len(wav) - body
			}
			if size == 0 {
				return nil, errors.New("empty data chunk")
			}
			return wav[body : body+size], nil
		}

		if size <= 0 {
			break
		}
		if size%2 == 1 {
			size++ // chunks are word-aligned
		}
		off = body + size
	}

	return nil, errors.New("no data chunk found")
}
