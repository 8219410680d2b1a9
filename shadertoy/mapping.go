package shadertoy

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/polyfloyd/gltrace/glapi"
)

// A Mapping is a parsed representation of a "map <name>=<namespace>:<value>"
// directive.
type Mapping struct {
	Name      string
	Namespace string
	Value     string
}

func extractMappings(shaderSource string) []Mapping {
	matches := inputMappingRe.FindAllStringSubmatch(shaderSource, -1)
	mappings := make([]Mapping, 0, len(matches))
	for _, match := range matches {
		mappings = append(mappings, Mapping{
			Name:      match[1],
			Namespace: match[2],
			Value:     match[3],
		})
	}
	return mappings
}

func (m Mapping) samplerType() (string, bool) {
	switch m.Namespace {
	case "builtin":
		switch m.Value {
		case "Back Buffer", "RGBA Noise Small", "RGBA Noise Medium":
			return "sampler2D", true
		}
	case "audio", "image":
		return "sampler2D", true
	}
	return "", false
}

func (m Mapping) resource(gl glapi.GL, pwd string, unit uint32) (resource, error) {
	switch m.Namespace {
	case "builtin":
		switch m.Value {
		case "Back Buffer":
			return &backBuffer{uniformName: m.Name, unit: unit}, nil
		case "RGBA Noise Small": // 64x64 4channels uint8
			return newImageTexture(gl, noise(image.Rect(0, 0, 64, 64)), m.Name, unit), nil
		case "RGBA Noise Medium": // 256x256 4channels uint8
			return newImageTexture(gl, noise(image.Rect(0, 0, 256, 256)), m.Name, unit), nil
		}
		return nil, errors.Errorf("unknown builtin mapping %q", m.Value)

	case "image":
		fd, err := os.Open(resolvePath(pwd, m.Value))
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		img, _, err := image.Decode(fd)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode %s", m.Value)
		}
		return newImageTexture(gl, img, m.Name, unit), nil

	case "audio":
		source, err := newAudioSource(pwd, m.Value)
		if err != nil {
			return nil, err
		}
		return newAudioTexture(gl, source, m.Name, unit), nil
	}
	return nil, errors.Errorf("don't know how to map %s", m.Namespace)
}

func noise(rect image.Rectangle) image.Image {
	img := image.NewRGBA(rect)
	rng := rand.New(rand.NewSource(1337))
	rng.Read(img.Pix)
	return img
}

func resolvePath(pwd, path string) string {
	if len(path) > 0 && path[0] == '~' {
		home := os.Getenv("HOME")
		if home == "" {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	if !filepath.IsAbs(path) {
		return filepath.Join(pwd, path)
	}
	return path
}
