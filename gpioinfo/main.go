// Command gpioinfo lists GPIO chips and their lines.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BertoldVdb/go-misc/logrusconfig"
	"github.com/sirupsen/logrus"

	"github.com/BertoldVdb/go-gpioinfo/gpio"
)

func main() {
	chipFlag := flag.String("chip", "", "Only list lines of this chip. Accepts a full device path, a chip number or a device name under /dev")
	logrusconfig.InitParam()
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `Usage: gpioinfo [options] [chips|lines]

Lists the available GPIO chips (default), or the lines of one or all chips.`)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logrusconfig.GetLogger(logrus.InfoLevel)

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "chips"
	}

	var err error
	switch cmd {
	case "chips":
		err = listChips(logger)
	case "lines":
		err = listLines(logger, *chipFlag)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func listChips(logger *logrus.Entry) error {
	chips, err := gpio.ListChips(logger)
	if err != nil {
		return err
	}

	fmt.Printf("%-20s %-16s %-24s %5s\n", "Chip", "Name", "Label", "Lines")
	for _, path := range chips {
		chip, err := gpio.Open(path, logger)
		if err != nil {
			return err
		}

		info, err := chip.ChipInfo()
		chip.Close()
		if err != nil {
			return err
		}

		fmt.Printf("%-20s %-16s %-24s %5d\n", path, info.Name, info.Label, info.Lines)
	}

	return nil
}

func listLines(logger *logrus.Entry, desc string) error {
	if desc != "" {
		path, err := gpio.ParseChipDescriptor(desc)
		if err != nil {
			return err
		}

		return listLinesForChip(logger, path)
	}

	chips, err := gpio.ListChips(logger)
	if err != nil {
		return err
	}

	for _, path := range chips {
		// Output printed for earlier chips stays valid when a later one
		// fails.
		if err := listLinesForChip(logger, path); err != nil {
			return err
		}
	}

	return nil
}

func listLinesForChip(logger *logrus.Entry, path string) error {
	chip, err := gpio.Open(path, logger)
	if err != nil {
		return err
	}
	defer chip.Close()

	info, err := chip.ChipInfo()
	if err != nil {
		return err
	}

	fmt.Println("Chip:", path)
	fmt.Printf("    %6s %6s %-20s %-20s %s\n", "Line", "Offset", "Name", "Consumer", "Flags")
	for line := 0; line < int(info.Lines); line++ {
		li, err := chip.LineInfo(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		fmt.Printf("    %6d %6d %-20s %-20s %s\n", line, li.Offset, li.Name, li.Consumer, li.Flags)
	}

	return nil
}
