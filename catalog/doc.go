// SPDX-License-Identifier: MIT

// Package catalog keeps named functions: an expression in the expr
// language plus the interval it is meant to be plotted on.
//
// Builtin returns the functions shipped with the module. Load and LoadFile
// read additional entries from YAML:
//
//	- name: scene
//	  expr: 0.25*(x/2)^3 - x/2 + 1
//	  from: -5.7
//	  to: 5.7
//	  description: cubic used by the tangent animation
//
// Every entry is compiled while loading, so a Catalog never holds an
// expression that does not parse.
package catalog
