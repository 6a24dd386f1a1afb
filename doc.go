// Package raintrap computes the rainwater trapped between bars of a 1-D
// elevation profile.
//
// 🚀 What is raintrap?
//
//	A small library plus command line:
//		• trap/    — two-pointer scan (Trap, TrapChecked, Levels)
//		• profile/ — deterministic profile generators for fixtures and demos
//		• cmd/raintrap — reads a bar count and heights, prints the volume
//
// Quick ASCII example:
//
//	          █
//	█ ≈ ≈ ≈ ≈ █
//	█ ≈ ≈ █ ≈ █
//	█ ≈ ≈ █ ≈ █
//	3 0 0 2 0 4   → 10 units
//
//	go install github.com/katalvlaran/raintrap/cmd/raintrap@latest
//	echo "6 4 2 0 3 2 5" | raintrap
package raintrap
