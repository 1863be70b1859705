// Package render turns evaluated rods into images.
//
// [FrameRenderer] draws one animation frame per time sample: the
// temperature profile, a heat strip coloured by the field, and an optional
// jittering lattice. [RenderFrames] renders a batch concurrently and
// [EncodeGIF] or [WritePNGs] write the result. [PlotProfiles] and
// [PlotHeatMap] produce static charts.
package render
