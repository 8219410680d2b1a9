package shadertoy

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"time"
	"unsafe"

	"github.com/mjibson/go-dsp/fft"
	"github.com/pkg/errors"

	"github.com/polyfloyd/gltrace/glapi"
	"github.com/polyfloyd/gltrace/renderer"
)

const (
	audioTexWidth = 512

	decodeSampleRate = 22000
)

var (
	audioGenericValueRe = regexp.MustCompile(`^([^;]+)$`)
	audioPCMValueRe     = regexp.MustCompile(`^([^;]+);(\d+):(\d+):([su]\d{1,2}[lb]e)$`)
)

// pcmFormat is an ffmpeg style sample format name, e.g. "s16le".
type pcmFormat string

func (f pcmFormat) bits() int {
	b, _ := strconv.Atoi(string(f[1 : len(f)-2]))
	return b
}

type audioSource interface {
	SampleRate() float32
	// ReadSamples returns the mono samples for the next period in the range
	// [-1, 1]. Silence is returned once the source is exhausted.
	ReadSamples(period time.Duration) []float64
	Close() error
}

// newAudioSource parses the value of an "audio:" mapping. The value is
// either a file that is decoded with ffmpeg or raw PCM described as
// "<file>;<samplerate>:<channels>:<format>".
func newAudioSource(pwd, value string) (audioSource, error) {
	if match := audioGenericValueRe.FindStringSubmatch(value); match != nil {
		return decodeAudioFile(resolvePath(pwd, match[1]))
	}

	match := audioPCMValueRe.FindStringSubmatch(value)
	if match == nil {
		return nil, errors.Errorf("could not parse audio value: %q (format: %s)", value, audioPCMValueRe)
	}
	sampleRate, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, err
	}
	channels, err := strconv.Atoi(match[3])
	if err != nil {
		return nil, err
	}
	if channels < 1 {
		return nil, errors.Errorf("invalid number of audio channels: %d", channels)
	}
	format := pcmFormat(match[4])
	if format != "s16le" {
		return nil, errors.Errorf("unsupported PCM format %q", format)
	}

	fd, err := os.Open(resolvePath(pwd, match[1]))
	if err != nil {
		return nil, errors.Wrap(err, "could not open audio source")
	}
	return &rawSource{
		r:          fd,
		sampleRate: sampleRate,
		channels:   channels,
		format:     format,
	}, nil
}

type rawSource struct {
	r                    io.ReadCloser
	sampleRate, channels int
	format               pcmFormat
}

func (s *rawSource) SampleRate() float32 {
	return float32(s.sampleRate)
}

func (s *rawSource) ReadSamples(period time.Duration) []float64 {
	numBytes := s.format.bits() / 8
	frameSize := s.channels * numBytes
	numFrames := int(time.Duration(s.sampleRate) * period / time.Second)
	buf := make([]byte, numFrames*frameSize)
	n, err := io.ReadFull(s.r, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return make([]float64, numFrames)
	}

	// Only the first channel is used.
	samples := make([]float64, n/frameSize)
	for i := range samples {
		b := buf[i*frameSize:]
		sample := int16(uint16(b[0]) | uint16(b[1])<<8)
		samples[i] = float64(sample) / float64(0x7fff)
	}
	return samples
}

func (s *rawSource) Close() error {
	return s.r.Close()
}

type ffmpegStream struct {
	io.ReadCloser
	cmd *exec.Cmd
}

func (s *ffmpegStream) Close() error {
	s.ReadCloser.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.cmd.Wait()
	return nil
}

func decodeAudioFile(filename string) (audioSource, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, errors.Wrap(err, "could not open audio source")
	}
	cmd := exec.Command(
		"ffmpeg",
		"-loglevel", "error",
		"-i", filename,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", strconv.Itoa(decodeSampleRate),
		"-",
	)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "could not start ffmpeg")
	}
	return &rawSource{
		r:          &ffmpegStream{ReadCloser: stdout, cmd: cmd},
		sampleRate: decodeSampleRate,
		channels:   1,
		format:     "s16le",
	}, nil
}

// audioTexture maps an audio stream to a 512x2 texture. The first row holds
// the spectrum, the second the waveform of the most recent samples.
type audioTexture struct {
	gl          glapi.GL
	uniformName string
	id          uint32
	unit        uint32
	source      audioSource

	prevPeriod []float64
}

func newAudioTexture(gl glapi.GL, source audioSource, uniformName string, unit uint32) *audioTexture {
	at := &audioTexture{
		gl:          gl,
		uniformName: uniformName,
		unit:        unit,
		source:      source,
		prevPeriod:  make([]float64, audioTexWidth),
	}
	var names [1]uint32
	gl.GenTextures(names[:])
	at.id = names[0]
	gl.BindTexture(glapi.TEXTURE_2D, at.id)

	initialData := make([]uint8, audioTexWidth*2*3)
	gl.TexImage2D(
		glapi.TEXTURE_2D,
		0,
		int32(glapi.RGBA),
		audioTexWidth,
		2,
		0,
		glapi.RGB,
		glapi.UNSIGNED_BYTE,
		unsafe.Pointer(&initialData[0]),
	)
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_S, int32(glapi.CLAMP_TO_EDGE))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_T, int32(glapi.CLAMP_TO_EDGE))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MAG_FILTER, int32(glapi.NEAREST))
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MIN_FILTER, int32(glapi.NEAREST))
	gl.BindTexture(glapi.TEXTURE_2D, 0)
	return at
}

// audioTextureData renders the spectrum and waveform of period into RGB pixels.
func audioTextureData(period []float64) []uint8 {
	data := make([]uint8, audioTexWidth*2*3)
	gray := func(px int, v float64) {
		if v < -1 {
			v = -1
		} else if v > 1 {
			v = 1
		}
		b := uint8((v*0.5 + 0.5) * 255.0)
		data[px*3+0] = b
		data[px*3+1] = b
		data[px*3+2] = b
	}

	freqs := fft.FFTReal(period)
	for x := 0; x < audioTexWidth/2; x++ {
		gray(x*2, real(freqs[x]))
		gray(x*2+1, imag(freqs[x]))
	}
	for x := 0; x < audioTexWidth; x++ {
		gray(audioTexWidth+x, period[x])
	}
	return data
}

func (at *audioTexture) PreRender(gl glapi.GL, state renderer.RenderState) {
	newPeriod := at.source.ReadSamples(state.Interval)
	at.prevPeriod = append(at.prevPeriod, newPeriod...)[len(newPeriod):]
	period := at.prevPeriod[len(at.prevPeriod)-audioTexWidth:]

	if loc, ok := state.Uniforms[at.uniformName]; ok {
		data := audioTextureData(period)
		gl.ActiveTexture(glapi.TEXTURE0 + glapi.Enum(at.unit))
		gl.BindTexture(glapi.TEXTURE_2D, at.id)
		gl.TexSubImage2D(
			glapi.TEXTURE_2D,
			0,
			0,
			0,
			audioTexWidth,
			2,
			glapi.RGB,
			glapi.UNSIGNED_BYTE,
			unsafe.Pointer(&data[0]),
		)
		gl.Uniform1i(loc.Location, int32(at.unit))
	}
	if m := ichannelNumRe.FindStringSubmatch(at.uniformName); m != nil {
		if loc, ok := state.Uniforms[fmt.Sprintf("iChannelResolution[%s]", m[1])]; ok {
			gl.Uniform3f(loc.Location, audioTexWidth, 2, 1)
		}
		if loc, ok := state.Uniforms[fmt.Sprintf("iChannelTime[%s]", m[1])]; ok {
			gl.Uniform1f(loc.Location, float32(state.Time)/float32(time.Second))
		}
	}
	if loc, ok := state.Uniforms["iSampleRate"]; ok {
		gl.Uniform1f(loc.Location, at.source.SampleRate())
	}
}

func (at *audioTexture) Close() {
	at.gl.DeleteTextures([]uint32{at.id})
	at.source.Close()
}
