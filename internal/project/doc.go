// Package project loads the JSON project config that describes the
// clips to cut and how they assemble into the final video.
//
// The document is the user-facing contract of the tool. Fields whose
// member order flows into generated commands (input, filter_complex)
// are kept as raw JSON and decoded token-wise by the renderers; the
// rest decode into plain structs. Validation runs at load time so the
// renderers can assume a well-shaped document.
package project
