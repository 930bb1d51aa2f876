package renderer

// Unit cube geometry centered at the origin, interleaved position (3) and
// normal (3). Scaled and translated per node at draw time.

// solidCubeVertices returns 36 vertices for a solid unit cube.
func solidCubeVertices() []float32 {
	h := float32(0.5)
	return []float32{
		// +X face
		h, -h, -h, 1, 0, 0, h, h, -h, 1, 0, 0, h, h, h, 1, 0, 0,
		h, -h, -h, 1, 0, 0, h, h, h, 1, 0, 0, h, -h, h, 1, 0, 0,
		// -X face
		-h, -h, h, -1, 0, 0, -h, h, h, -1, 0, 0, -h, h, -h, -1, 0, 0,
		-h, -h, h, -1, 0, 0, -h, h, -h, -1, 0, 0, -h, -h, -h, -1, 0, 0,
		// +Y face
		-h, h, -h, 0, 1, 0, -h, h, h, 0, 1, 0, h, h, h, 0, 1, 0,
		-h, h, -h, 0, 1, 0, h, h, h, 0, 1, 0, h, h, -h, 0, 1, 0,
		// -Y face
		-h, -h, h, 0, -1, 0, -h, -h, -h, 0, -1, 0, h, -h, -h, 0, -1, 0,
		-h, -h, h, 0, -1, 0, h, -h, -h, 0, -1, 0, h, -h, h, 0, -1, 0,
		// +Z face
		-h, -h, h, 0, 0, 1, h, -h, h, 0, 0, 1, h, h, h, 0, 0, 1,
		-h, -h, h, 0, 0, 1, h, h, h, 0, 0, 1, -h, h, h, 0, 0, 1,
		// -Z face
		h, -h, -h, 0, 0, -1, -h, -h, -h, 0, 0, -1, -h, h, -h, 0, 0, -1,
		h, -h, -h, 0, 0, -1, -h, h, -h, 0, 0, -1, h, h, -h, 0, 0, -1,
	}
}

// wireCubeVertices returns 24 line vertices (12 edges) for a unit cube
// outline. Normals are zero so the fragment shader draws it unshaded.
func wireCubeVertices() []float32 {
	h := float32(0.5)
	return []float32{
		// Bottom face (4 edges)
		-h, -h, -h, 0, 0, 0, h, -h, -h, 0, 0, 0,
		h, -h, -h, 0, 0, 0, h, -h, h, 0, 0, 0,
		h, -h, h, 0, 0, 0, -h, -h, h, 0, 0, 0,
		-h, -h, h, 0, 0, 0, -h, -h, -h, 0, 0, 0,
		// Top face (4 edges)
		-h, h, -h, 0, 0, 0, h, h, -h, 0, 0, 0,
		h, h, -h, 0, 0, 0, h, h, h, 0, 0, 0,
		h, h, h, 0, 0, 0, -h, h, h, 0, 0, 0,
		-h, h, h, 0, 0, 0, -h, h, -h, 0, 0, 0,
		// Vertical edges (4 edges)
		-h, -h, -h, 0, 0, 0, -h, h, -h, 0, 0, 0,
		h, -h, -h, 0, 0, 0, h, h, -h, 0, 0, 0,
		h, -h, h, 0, 0, 0, h, h, h, 0, 0, 0,
		-h, -h, h, 0, 0, 0, -h, h, h, 0, 0, 0,
	}
}
