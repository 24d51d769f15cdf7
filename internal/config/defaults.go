package config

// Defaults reproduce the command lines the tool has always generated.
const (
	defaultFFmpegBinary     = "ffmpeg"
	defaultAudioCodec       = "aac"
	defaultVideoCodec       = "h264"
	defaultScaleFilter      = "scale=720x1280,setsar=1:1"
	defaultBuildDir         = "build"
	defaultMakefile         = "Makefile"
	defaultOverlayFontFile  = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	defaultOverlayFontColor = "black"
	defaultOverlayFontSize  = 28
	defaultOverlayBoxColor  = "white@0.8"
	defaultOverlayBoxBorder = 10
	defaultOverlayX         = "w-200"
	defaultOverlayY         = "15"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults. The
// overlay text and final output path stay empty here; normalize fills
// them from the environment and the build directory.
func Default() Config {
	return Config{
		FFmpeg: FFmpeg{
			Binary:      defaultFFmpegBinary,
			AudioCodec:  defaultAudioCodec,
			VideoCodec:  defaultVideoCodec,
			ScaleFilter: defaultScaleFilter,
		},
		Output: Output{
			BuildDir: defaultBuildDir,
			Makefile: defaultMakefile,
		},
		Overlay: Overlay{
			FontFile:  defaultOverlayFontFile,
			FontColor: defaultOverlayFontColor,
			FontSize:  defaultOverlayFontSize,
			Box:       true,
			BoxColor:  defaultOverlayBoxColor,
			BoxBorder: defaultOverlayBoxBorder,
			X:         defaultOverlayX,
			Y:         defaultOverlayY,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
