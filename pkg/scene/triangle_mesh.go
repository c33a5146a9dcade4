package scene

import (
	"math"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
)

// NewShapesScene shows triangle meshes, a disc and a mixed material.
// The meshes are placed with Rotate and Translate rather than by moving their vertices.
func NewShapesScene(Options) (*Scene, error) {
	camera := renderer.CameraConfig{
		LookFrom: core.NewVec3(0, 3, 8),
		LookAt:   core.NewVec3(0, 0.8, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     35,
	}

	s := newScene("shapes", camera, skyBackground())
	s.Sampling = SamplingConfig{AspectRatio: 16.0 / 9.0, SamplesPerPixel: 100, MaxDepth: 40}

	redMetal := material.NewMetal(core.NewVec3(0.8, 0.2, 0.2), 0.1)
	blueLambertian := material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8))
	goldMetal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05)

	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// Box on the left, 30° about Y
	box := geometry.NewBox(core.NewVec3(-0.5, 0, -0.5), core.NewVec3(0.5, 1, 0.5), redMetal)
	s.Add(geometry.NewTranslate(geometry.NewRotateY(box, 30), core.NewVec3(-2, 0, 0)))

	// Pyramid in the middle, 45° about Y
	s.Add(geometry.NewRotateY(pyramidMesh(1.5, 2.0, blueLambertian), 45))

	// Icosahedron on the right, tipped about a tilted axis through its center
	center := core.NewVec3(2, 0.8, 0)
	axis := core.NewRay(center, core.NewVec3(1, 1, 0))
	s.Add(geometry.NewRotate(icosahedronMesh(center, 0.8, goldMetal), axis, math.Pi/3))

	// Half glass, half diffuse disc lying in front
	frosted := material.NewMix(material.NewDielectric(1.5), material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9)), 0.5)
	s.Add(geometry.NewShapeObject(geometry.NewDisc(core.NewVec3(0, 0.01, 2), core.NewVec3(0, 1, 0), 0.6), frosted))

	// Overhead disc light
	s.Add(geometry.NewShapeObject(
		geometry.NewDisc(core.NewVec3(0, 6, 0), core.NewVec3(0, -1, 0), 1.5),
		material.NewEmissive(core.NewVec3(6, 6, 6)),
	))

	return s, nil
}

// triangleMesh builds one triangle per index triple in faces
func triangleMesh(vertices []core.Vec3, faces []int, mat material.Material) *geometry.ObjectList {
	mesh := geometry.NewObjectList()
	for i := 0; i+2 < len(faces); i += 3 {
		triangle := geometry.NewTriangle(vertices[faces[i]], vertices[faces[i+1]], vertices[faces[i+2]])
		mesh.Add(geometry.NewShapeObject(triangle, mat))
	}
	return mesh
}

// pyramidMesh creates a square pyramid standing on the origin
func pyramidMesh(baseSize, height float64, mat material.Material) *geometry.ObjectList {
	h := baseSize * 0.5

	vertices := []core.Vec3{
		core.NewVec3(-h, 0, -h), // 0: left-back
		core.NewVec3(+h, 0, -h), // 1: right-back
		core.NewVec3(+h, 0, +h), // 2: right-front
		core.NewVec3(-h, 0, +h), // 3: left-front
		core.NewVec3(0, height, 0),
	}

	faces := []int{
		// Base
		0, 2, 1, 0, 3, 2,
		// Sides
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}

	return triangleMesh(vertices, faces, mat)
}

// icosahedronMesh creates a regular 20-sided polyhedron whose vertices lie at radius from center
func icosahedronMesh(center core.Vec3, radius float64, mat material.Material) *geometry.ObjectList {
	phi := math.Phi
	scale := radius / math.Sqrt(1+phi*phi)

	raw := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0), core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi), core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1), core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}
	vertices := make([]core.Vec3, len(raw))
	for i, v := range raw {
		vertices[i] = center.Add(v.Multiply(scale))
	}

	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return triangleMesh(vertices, faces, mat)
}
