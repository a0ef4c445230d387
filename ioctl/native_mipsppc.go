//go:build mips || mipsle || mips64 || mips64le || ppc64 || ppc64le

package ioctl

// Native is the identifier profile of the build target.
var Native = MIPSPowerPC
