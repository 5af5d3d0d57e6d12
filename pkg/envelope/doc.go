// Package envelope defines the building envelope produced by the generator:
// zones, spaces, and the boundary-classified planar surfaces that bound them.
package envelope
