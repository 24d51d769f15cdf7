package project

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"vidmake/internal/jsonutil"
)

// ErrNoVideos reports a document without a videos list. An empty list
// is legal; a missing or null one is not.
var ErrNoVideos = errors.New(`missing "videos" list`)

var validate = validator.New()

// Validate checks the document shape before rendering. Field presence
// runs through struct tags; the raw fields get shape checks the tag
// language cannot express.
func (d *Document) Validate() error {
	if d.Videos == nil {
		return ErrNoVideos
	}
	if err := validate.Struct(d); err != nil {
		return err
	}
	for i, clip := range d.Videos {
		if err := clip.validateShape(); err != nil {
			return fmt.Errorf("videos[%d]: %w", i, err)
		}
	}
	return nil
}

func (c *Clip) validateShape() error {
	switch kind := jsonutil.KindOf(c.Input); kind {
	case jsonutil.KindString, jsonutil.KindArray:
	default:
		return fmt.Errorf("input must be a string or a list, got %s", kind)
	}
	if len(c.FilterComplex) > 0 {
		switch kind := jsonutil.KindOf(c.FilterComplex); kind {
		case jsonutil.KindString, jsonutil.KindArray:
		default:
			return fmt.Errorf("filter_complex must be a string or a list, got %s", kind)
		}
	}
	return nil
}
