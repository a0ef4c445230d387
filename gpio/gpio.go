// Package gpio queries Linux GPIO character devices for chip and line
// information using the v2 chardev interface.
package gpio

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BertoldVdb/go-misc/closeflag"
	"github.com/sirupsen/logrus"

	"github.com/BertoldVdb/go-gpioinfo/uapi"
)

var (
	// ErrorNotCharDev is returned when an opened path is not a character device.
	ErrorNotCharDev = errors.New("GPIO device is not a character device")

	// ErrorInvalidDescriptor is returned for a chip descriptor that cannot name a device.
	ErrorInvalidDescriptor = errors.New("Empty GPIO chip descriptor")

	// ErrorInvalidLine is returned for a line number outside the protocol's offset range.
	ErrorInvalidLine = errors.New("Invalid GPIO line number")
)

// Chip is an open GPIO character device. A Chip is not safe for concurrent
// use; callers querying multiple chips in parallel should open one Chip each.
type Chip struct {
	file   *os.File
	closed closeflag.CloseFlag

	logger *logrus.Entry
}

// ChipInfo describes a GPIO chip.
type ChipInfo struct {
	Name  string
	Label string
	Lines uint32
}

// LineInfo describes a single GPIO line.
type LineInfo struct {
	Name     string
	Consumer string
	Offset   uint32
	Flags    LineFlags
	Attrs    []LineAttr
}

// ParseChipDescriptor converts a chip descriptor into a device path. A
// descriptor is either an absolute path, a bare chip number (mapped to
// /dev/gpiochipN) or a device name under /dev.
func ParseChipDescriptor(desc string) (string, error) {
	switch {
	case desc == "":
		return "", ErrorInvalidDescriptor
	case strings.HasPrefix(desc, "/"):
		return desc, nil
	case isDigits(desc):
		return "/dev/gpiochip" + desc, nil
	}

	return filepath.Join("/dev", desc), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Open opens a GPIO character device by path. Opening a path that is not a
// character device fails with ErrorNotCharDev. logger may be nil.
func Open(path string, logger *logrus.Entry) (*Chip, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		file.Close()
		return nil, ErrorNotCharDev
	}

	c := &Chip{
		file:   file,
		logger: ensureLogger(logger),
	}
	c.closed.CloseFunc = file.Close

	return c, nil
}

// OpenDescriptor opens a GPIO character device by descriptor string, see
// ParseChipDescriptor.
func OpenDescriptor(desc string, logger *logrus.Entry) (*Chip, error) {
	path, err := ParseChipDescriptor(desc)
	if err != nil {
		return nil, err
	}

	return Open(path, logger)
}

// ListChips returns the paths of the GPIO character devices found under
// /dev. Entries that cannot be interrogated are skipped with a warning.
// logger may be nil.
func ListChips(logger *logrus.Entry) ([]string, error) {
	logger = ensureLogger(logger)

	entries, err := os.ReadDir("/dev")
	if err != nil {
		return nil, err
	}

	var chips []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "gpiochip") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logger.Warn("Failed to get file type for ", entry.Name(), ": ", err)
			continue
		}

		if info.Mode()&os.ModeCharDevice != 0 {
			chips = append(chips, filepath.Join("/dev", entry.Name()))
		}
	}

	return chips, nil
}

// Close releases the device handle. Calling Close more than once returns
// closeflag.ErrorClosed, which is harmless.
func (c *Chip) Close() error {
	return c.closed.Close()
}

// ChipInfo returns information about this chip.
func (c *Chip) ChipInfo() (ChipInfo, error) {
	raw, err := uapi.GetChipInfo(c.file.Fd())
	if err != nil {
		return ChipInfo{}, err
	}

	return ChipInfo{
		Name:  bytesToString(raw.Name[:]),
		Label: bytesToString(raw.Label[:]),
		Lines: raw.Lines,
	}, nil
}

// LineInfo returns information about one line. The line number is checked
// against the protocol's offset field before any system call is made.
func (c *Chip) LineInfo(line int) (LineInfo, error) {
	if line < 0 || uint64(line) > math.MaxUint32 {
		return LineInfo{}, ErrorInvalidLine
	}

	raw, err := uapi.GetLineInfo(c.file.Fd(), uint32(line))
	if err != nil {
		return LineInfo{}, err
	}

	return LineInfo{
		Name:     bytesToString(raw.Name[:]),
		Consumer: bytesToString(raw.Consumer[:]),
		Offset:   raw.Offset,
		Flags:    LineFlags(raw.Flags),
		Attrs:    decodeLineAttrs(&raw, c.logger),
	}, nil
}

// bytesToString converts a fixed size buffer that is not necessarily NUL
// terminated. Data after the first NUL is ignored.
func bytesToString(input []byte) string {
	if n := bytes.IndexByte(input, 0); n >= 0 {
		input = input[:n]
	}

	return string(input)
}

func ensureLogger(logger *logrus.Entry) *logrus.Entry {
	if logger != nil {
		return logger
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
