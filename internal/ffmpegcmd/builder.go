package ffmpegcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vidmake/internal/config"
	"vidmake/internal/filtergraph"
	"vidmake/internal/jsonutil"
	"vidmake/internal/project"
)

// Rendered pairs a clip with its generated command line. The builder
// never writes back into the clip; everything derived lives here.
type Rendered struct {
	Clip    *project.Clip
	Command string
	Output  string
	Require string
}

// Builder renders clip descriptions into ffmpeg command lines using
// the installation defaults from the settings.
type Builder struct {
	cfg *config.Config
}

// NewBuilder returns a Builder bound to the given settings.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Clips renders every clip in the document, in order.
func (b *Builder) Clips(doc *project.Document) ([]Rendered, error) {
	rendered := make([]Rendered, 0, len(doc.Videos))
	for i, clip := range doc.Videos {
		r, err := b.Clip(clip)
		if err != nil {
			return nil, fmt.Errorf("videos[%d]: %w", i, err)
		}
		rendered = append(rendered, r)
	}
	return rendered, nil
}

// Clip renders the command line that cuts one clip.
func (b *Builder) Clip(clip *project.Clip) (Rendered, error) {
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, b.cfg.FFmpeg.Binary, "-hide_banner")

	// --- Inputs, each with its own pre-input flags ---
	args, err := appendInputs(args, clip.Input)
	if err != nil {
		return Rendered{}, fmt.Errorf("clip %s: %w", clip.Output, err)
	}

	// --- Filter graph, or the default scale when none is given ---
	if len(clip.FilterComplex) > 0 {
		args, err = appendFilter(args, clip.FilterComplex)
		if err != nil {
			return Rendered{}, fmt.Errorf("clip %s: %w", clip.Output, err)
		}

		// Maps only make sense against the graph's named streams.
		if !clip.Has(project.AttrNoAudio) {
			args = append(args, "-map", "[audio]")
		}
		if !clip.Has(project.AttrNoVideo) {
			args = append(args, "-map", "[video]")
		}
	} else {
		args = append(args, "-vf", b.cfg.FFmpeg.ScaleFilter)
	}

	// --- Codecs ---
	if !clip.Has(project.AttrNoAudio) {
		args = append(args, "-c:a", clip.AudioCodec(b.cfg.FFmpeg.AudioCodec))
	}
	if !clip.Has(project.AttrNoVideo) {
		args = append(args, "-c:v", clip.VideoCodec(b.cfg.FFmpeg.VideoCodec))
	}

	// --- Container flags ---
	args = append(args, "-map_metadata", "-1")
	if clip.Has(project.AttrVSync) {
		args = append(args, "-vsync", "2")
	}
	if len(clip.MovFlags) > 0 {
		args = append(args, "-movflags", strings.Join(clip.MovFlags, " "))
	}

	// --- Output ---
	args = append(args, "-y", clip.Output)

	return Rendered{
		Clip:    clip,
		Command: strings.Join(args, " "),
		Output:  clip.Output,
		Require: clip.Require,
	}, nil
}

// appendFilter emits -filter_complex. A plain string passes through
// with whatever quoting the author chose; a list renders through the
// chain formatter and is wrapped in double quotes for the shell.
func appendFilter(args []string, raw json.RawMessage) ([]string, error) {
	args = append(args, "-filter_complex")
	if jsonutil.KindOf(raw) == jsonutil.KindString {
		text, _ := jsonutil.ScalarText(raw)
		return append(args, text), nil
	}
	chain, err := filtergraph.FormatChain(raw)
	if err != nil {
		return nil, err
	}
	return append(args, `"`+chain+`"`), nil
}

// appendInputs emits the -i arguments. A plain string is one input; a
// list mixes strings with objects whose members become per-input flags
// emitted before their "i" path.
func appendInputs(args []string, raw json.RawMessage) ([]string, error) {
	if jsonutil.KindOf(raw) == jsonutil.KindString {
		path, _ := jsonutil.ScalarText(raw)
		return append(args, "-i", path), nil
	}
	elems, err := jsonutil.DecodeElems(raw)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	for i, elem := range elems {
		switch jsonutil.KindOf(elem) {
		case jsonutil.KindString:
			path, _ := jsonutil.ScalarText(elem)
			args = append(args, "-i", path)
		case jsonutil.KindObject:
			args, err = appendInputMap(args, elem)
			if err != nil {
				return nil, fmt.Errorf("input %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("input %d: expected string or object, got %s", i, jsonutil.KindOf(elem))
		}
	}
	return args, nil
}

// appendInputMap emits one input object: its members in document order
// as -key value flags, except "i", whose value closes the group as the
// -i path.
func appendInputMap(args []string, raw json.RawMessage) ([]string, error) {
	pairs, err := jsonutil.DecodePairs(raw)
	if err != nil {
		return nil, err
	}
	path := ""
	found := false
	for _, p := range pairs {
		text, ok := jsonutil.ScalarText(p.Value)
		if !ok {
			return nil, fmt.Errorf("option %q: unsupported value type %s", p.Key, jsonutil.KindOf(p.Value))
		}
		if p.Key == "i" {
			path = text
			found = true
			continue
		}
		args = append(args, "-"+p.Key, text)
	}
	if !found {
		return nil, errors.New(`missing "i" path`)
	}
	return append(args, "-i", path), nil
}
