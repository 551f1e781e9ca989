// Package lvbuild is a toolkit for assembling particle structures from
// rigid, hierarchical building blocks.
//
// 🚀 What is lvbuild?
//
//	A small, deterministic library that brings together:
//		• Vector math: unit vectors, angles, Rodrigues rotation matrices
//		• Compounds: insertion-ordered trees of particles with rigid transforms
//		• Ports: ghost connectors that face a direction and remember an anchor
//		• Clone: deep copy that remaps anchors instead of sharing them
//		• Boxes & lattices: periodic cells, SC/BCC/FCC/hexagonal fills
//		• Recipes: YAML descriptions turned into compound trees
//
// Under the hood, everything is organized under these subpackages:
//
//	vecmath/  — Vec3, Matrix3, RotationMatrix
//	compound/ — Particle, Compound, Port, Clone
//	box/      — periodic cell from lengths/angles, vectors or extents
//	lattice/  — Bravais lattices and Populate
//	recipe/   — YAML recipe parsing and building
//	cmd/lvbuild — command line front end (port, build, version)
//
// Quick ASCII example, a port facing +x anchored on H:
//
//	    O───H  ▷ up
//	           ◁ down
//
// The up sub-frame faces the orientation, the down sub-frame faces away,
// and two ports fuse when their directions oppose.
//
//	go get github.com/katalvlaran/lvbuild
package lvbuild
