package espeak

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// TestParseVoices tests parsing of espeak-ng --voices output.
func TestParseVoices(t *testing.T) {
	out := []byte(`Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af             --/M      Afrikaans          gmw/af
 5  bn             --/M      Bengali            bea/bn
 2  en-US          --/M      English_(America)  gmw/en-US            (en 10)
 5  hi             23/F      Hindi              inc/hi
`)

	voices := parseVoices(out)
	if len(voices) != 4 {
		t.Fatalf("parsed %d voices, want 4", len(voices))
	}

	bn := voices[1]
	if bn.Language != "bn" {
		t.Errorf("language = %q, want %q", bn.Language, "bn")
	}
	if bn.Name != "Bengali" {
		t.Errorf("name = %q, want %q", bn.Name, "Bengali")
	}
	if bn.ID != "bea/bn" {
		t.Errorf("id = %q, want %q", bn.ID, "bea/bn")
	}
	if bn.Gender != "male" {
		t.Errorf("gender = %q, want %q", bn.Gender, "male")
	}

	if voices[3].Gender != "female" {
		t.Errorf("hindi gender = %q, want %q", voices[3].Gender, "female")
	}
}

// TestParseVoicesEmpty verifies malformed or empty output yields nothing.
func TestParseVoicesEmpty(t *testing.T) {
	if voices := parseVoices(nil); len(voices) != 0 {
		t.Errorf("parsed %d voices from empty output", len(voices))
	}
	if voices := parseVoices([]byte("garbage\nshort line\n")); len(voices) != 0 {
		t.Errorf("parsed %d voices from garbage", len(voices))
	}
}

// buildWAV assembles a minimal RIFF/WAVE stream around pcm.
func buildWAV(pcm []byte, dataSize uint32) []byte {
	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+len(pcm))) //nolint:errcheck
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16)) //nolint:errcheck
	fmtChunk := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtChunk[0:2], 1)      // PCM
	binary.LittleEndian.PutUint16(fmtChunk[2:4], 1)      // mono
	binary.LittleEndian.PutUint32(fmtChunk[4:8], 22050)  // sample rate
	binary.LittleEndian.PutUint32(fmtChunk[8:12], 44100) // byte rate
	binary.LittleEndian.PutUint16(fmtChunk[12:14], 2)
	binary.LittleEndian.PutUint16(fmtChunk[14:16], 16)
	b.Write(fmtChunk)
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, dataSize) //nolint:errcheck
	b.Write(pcm)
	return b.Bytes()
}

// TestPCMFromWAV tests data chunk extraction.
func TestPCMFromWAV(t *testing.T) {
	pcm := []byte{1, 2, 3, 4, 5, 6}

	got, err := pcmFromWAV(buildWAV(pcm, uint32(len(pcm))))
	if err != nil {
		t.Fatalf("pcmFromWAV() error: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("pcm = %v, want %v", got, pcm)
	}
}

// TestPCMFromWAVStreamedSize verifies a zero data size (espeak writing to a
// pipe) falls back to the rest of the stream.
func TestPCMFromWAVStreamedSize(t *testing.T) {
	pcm := []byte{9, 8, 7, 6}

	got, err := pcmFromWAV(buildWAV(pcm, 0))
	if err != nil {
		t.Fatalf("pcmFromWAV() error: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("pcm = %v, want %v", got, pcm)
	}
}

// TestPCMFromWAVRejectsGarbage verifies non-WAV input errors out.
func TestPCMFromWAVRejectsGarbage(t *testing.T) {
	if _, err := pcmFromWAV([]byte("definitely not audio")); err == nil {
		t.Error("expected error for non-WAV input")
	}
	if _, err := pcmFromWAV(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

// TestScaleWPM tests rate multiplier mapping and clamping.
func TestScaleWPM(t *testing.T) {
	tests := []struct {
		base     int
		rate     float64
		expected int
	}{
		{175, 1.0, 175},
		{175, 0.9, 157},
		{175, 0.1, 80},   // clamped low
		{175, 10.0, 450}, // clamped high
		{175, 0, 175},    // zero falls back to normal
	}

	for _, tt := range tests {
		if got := scaleWPM(tt.base, tt.rate); got != tt.expected {
			t.Errorf("scaleWPM(%d, %v) = %d, want %d", tt.base, tt.rate, got, tt.expected)
		}
	}
}

// TestScalePitch tests pitch multiplier mapping and clamping.
func TestScalePitch(t *testing.T) {
	tests := []struct {
		pitch    float64
		expected int
	}{
		{1.0, 50},
		{0.5, 25},
		{2.0, 99}, // clamped
		{0, 50},   // zero falls back to default
	}

	for _, tt := range tests {
		if got := scalePitch(tt.pitch); got != tt.expected {
			t.Errorf("scalePitch(%v) = %d, want %d", tt.pitch, got, tt.expected)
		}
	}
}
