package gpio

import "strings"

// LineFlag is a single line state bit, as reported in LineInfo.Flags.
type LineFlag uint64

const (
	// LineFlagUsed indicates that the line is not available for requests.
	LineFlagUsed LineFlag = 1 << iota

	// LineFlagActiveLow indicates that the line active state is physical low.
	LineFlagActiveLow

	// LineFlagInput indicates that the line is an input.
	LineFlagInput

	// LineFlagOutput indicates that the line is an output.
	LineFlagOutput

	// LineFlagEdgeRising indicates that the line detects rising
	// (inactive to active) edges.
	LineFlagEdgeRising

	// LineFlagEdgeFalling indicates that the line detects falling
	// (active to inactive) edges.
	LineFlagEdgeFalling

	// LineFlagOpenDrain indicates that the line is an open-drain output.
	LineFlagOpenDrain

	// LineFlagOpenSource indicates that the line is an open-source output.
	LineFlagOpenSource

	// LineFlagBiasPullUp indicates that the line has a pull-up bias resistor
	// enabled.
	LineFlagBiasPullUp

	// LineFlagBiasPullDown indicates that the line has a pull-down bias
	// resistor enabled.
	LineFlagBiasPullDown

	// LineFlagBiasDisabled indicates that the line has no bias resistor
	// enabled.
	LineFlagBiasDisabled

	// LineFlagEventClockRealtime indicates that line events carry realtime
	// timestamps.
	LineFlagEventClockRealtime

	// LineFlagEventClockHte indicates that line events carry timestamps from
	// the hardware timestamp engine.
	LineFlagEventClockHte
)

// AllLineFlags lists every known flag in display order.
var AllLineFlags = []LineFlag{
	LineFlagUsed,
	LineFlagActiveLow,
	LineFlagInput,
	LineFlagOutput,
	LineFlagEdgeRising,
	LineFlagEdgeFalling,
	LineFlagOpenDrain,
	LineFlagOpenSource,
	LineFlagBiasPullUp,
	LineFlagBiasPullDown,
	LineFlagBiasDisabled,
	LineFlagEventClockRealtime,
	LineFlagEventClockHte,
}

func (f LineFlag) String() string {
	switch f {
	case LineFlagUsed:
		return "Used"
	case LineFlagActiveLow:
		return "ActiveLow"
	case LineFlagInput:
		return "Input"
	case LineFlagOutput:
		return "Output"
	case LineFlagEdgeRising:
		return "EdgeRising"
	case LineFlagEdgeFalling:
		return "EdgeFalling"
	case LineFlagOpenDrain:
		return "OpenDrain"
	case LineFlagOpenSource:
		return "OpenSource"
	case LineFlagBiasPullUp:
		return "BiasPullUp"
	case LineFlagBiasPullDown:
		return "BiasPullDown"
	case LineFlagBiasDisabled:
		return "BiasDisabled"
	case LineFlagEventClockRealtime:
		return "EventClockRealtime"
	case LineFlagEventClockHte:
		return "EventClockHte"
	}
	return "Unknown"
}

// LineFlags is a set of LineFlag bits. Being an integer type it supports the
// usual set algebra directly (&, |, ^, ^f). Bits the kernel adds in the
// future are preserved, they simply do not match any name when displayed.
type LineFlags uint64

// Has returns whether the given flag is set.
func (f LineFlags) Has(flag LineFlag) bool {
	return uint64(f)&uint64(flag) != 0
}

// String returns "None" for the empty set, otherwise the names of the set
// flags in declaration order joined by " | ".
func (f LineFlags) String() string {
	if f == 0 {
		return "None"
	}

	var parts []string
	for _, flag := range AllLineFlags {
		if f.Has(flag) {
			parts = append(parts, flag.String())
		}
	}

	return strings.Join(parts, " | ")
}
