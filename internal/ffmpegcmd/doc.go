// Package ffmpegcmd renders clip specs into ffmpeg command lines.
//
// Two renderers exist: Clip produces the cut command for one clip, and
// Concat produces the final assembly that concatenates every buildable
// clip and stamps the date overlay onto the video. Both are pure text
// generators over the project document and the settings; nothing here
// touches media files or runs ffmpeg.
//
// Token order inside a command is fixed and treated as part of the
// output contract, since downstream Makefiles are diffed and rebuilt
// based on these exact strings.
package ffmpegcmd
