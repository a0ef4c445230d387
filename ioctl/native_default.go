//go:build !mips && !mipsle && !mips64 && !mips64le && !ppc64 && !ppc64le && !sparc64

package ioctl

// Native is the identifier profile of the build target.
var Native = Generic
