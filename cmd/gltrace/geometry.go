package main

import (
	"os"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var geometryRe = regexp.MustCompile(`^(\d+)x(\d+)$`)

func parseGeometry(geom string) (uint, uint, error) {
	if geom == "env" {
		geom = os.Getenv("LEDCAT_GEOMETRY")
		if geom == "" {
			return 0, 0, errors.New("LEDCAT_GEOMETRY is empty while instructed to load the display geometry from the environment")
		}
	}

	matches := geometryRe.FindStringSubmatch(geom)
	if matches == nil {
		return 0, 0, errors.Errorf("invalid geometry: %q", geom)
	}
	w, errW := strconv.ParseUint(matches[1], 10, 16)
	h, errH := strconv.ParseUint(matches[2], 10, 16)
	if errW != nil || errH != nil {
		return 0, 0, errors.Errorf("geometry out of range: %q", geom)
	}
	if w == 0 || h == 0 {
		return 0, 0, errors.Errorf("no geometry dimension can be 0, got (%d, %d)", w, h)
	}
	return uint(w), uint(h), nil
}
