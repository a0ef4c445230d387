//go:build sparc64

package ioctl

// Native is the identifier profile of the build target.
var Native = SPARC
