package project

import (
	"encoding/json"
	"slices"
)

// Attribute values recognized on a clip. Unrecognized attributes are
// ignored.
const (
	AttrNoAudio   = "no-audio"
	AttrNoVideo   = "no-video"
	AttrVSync     = "vsync"
	AttrNotABuild = "not-a-build"
)

// Document is a parsed project config: the ordered list of clips plus,
// implicitly, the final assembly of all of them.
type Document struct {
	Videos []*Clip `json:"videos" validate:"dive,required"`
}

// Clip describes one rendered video. Input and FilterComplex stay raw
// because their member order carries through into the generated
// command lines.
type Clip struct {
	Input         json.RawMessage `json:"input" validate:"required"`
	Output        string          `json:"output" validate:"required"`
	FilterComplex json.RawMessage `json:"filter_complex,omitempty"`
	Codec         *Codec          `json:"codec,omitempty"`
	Attributes    []string        `json:"attributes,omitempty"`
	Require       string          `json:"require,omitempty"`
	MovFlags      []string        `json:"movflags,omitempty"`
}

// Codec overrides the default audio and video encoders for one clip.
type Codec struct {
	Audio string `json:"audio,omitempty"`
	Video string `json:"video,omitempty"`
}

// Has reports whether the clip carries the given attribute.
func (c *Clip) Has(attr string) bool {
	return slices.Contains(c.Attributes, attr)
}

// Buildable reports whether the clip participates in the final
// assembly. Clips marked not-a-build still get their own build rule.
func (c *Clip) Buildable() bool {
	return !c.Has(AttrNotABuild)
}

// AudioCodec returns the clip override, or fallback when unset.
func (c *Clip) AudioCodec(fallback string) string {
	if c.Codec != nil && c.Codec.Audio != "" {
		return c.Codec.Audio
	}
	return fallback
}

// VideoCodec returns the clip override, or fallback when unset.
func (c *Clip) VideoCodec(fallback string) string {
	if c.Codec != nil && c.Codec.Video != "" {
		return c.Codec.Video
	}
	return fallback
}
