// Package mcp exposes the questpath service as Model Context Protocol tools
// over stdio.
//
// Tools:
//
//   - find_path: one route search on a text grid
//   - plan_mission: plan a YAML or JSON mission document
//   - list_species: the species cost catalog
//   - grid_info: size, terrain counts and connectivity of a grid
//
// Every tool answers with a JSON text result. Request errors are reported
// as tool errors rather than protocol errors.
package mcp
