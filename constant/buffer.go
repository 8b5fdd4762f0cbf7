package constant

// Vertex Buffer Layout
// Field order per record: position.xyz, color.rgba, [texcoord.st,]
// normal.xyz, size. Normal is fixed (0,1,0) and alpha fixed 1.0; both exist
// only for attribute-layout compatibility with point-sprite shaders
const (
	// AttrStride is floats per particle without texture coordinates
	AttrStride = 11

	// AttrStrideTexCoord is floats per particle when the host renderer
	// expects a fixed (0.5, 0.5) texcoord pair after color
	AttrStrideTexCoord = 13

	// TexCoordS and TexCoordT are the constant point-sprite texcoords
	TexCoordS = 0.5
	TexCoordT = 0.5
)
