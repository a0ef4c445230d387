package gpio

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BertoldVdb/go-gpioinfo/uapi"
)

// LineAttr is one decoded line attribute. The concrete type is FlagsAttr,
// ValuesAttr or DebounceAttr; values are only constructed by the decoder,
// which dispatches on the raw attribute ID.
type LineAttr interface {
	fmt.Stringer

	lineAttr()
}

// FlagsAttr overrides the flags of the line.
type FlagsAttr struct {
	Flags LineFlags
}

func (FlagsAttr) lineAttr() {}

func (a FlagsAttr) String() string {
	return fmt.Sprintf("Flags: %s", a.Flags)
}

// ValuesAttr is a bitmap of the values the requested lines will be set to.
type ValuesAttr struct {
	Values uint64
}

func (ValuesAttr) lineAttr() {}

func (a ValuesAttr) String() string {
	return fmt.Sprintf("Values: 0b%064b", a.Values)
}

// DebounceAttr is the debounce period applied to the line.
type DebounceAttr struct {
	Period time.Duration
}

func (DebounceAttr) lineAttr() {}

func (a DebounceAttr) String() string {
	return fmt.Sprintf("Debounce Period: %s", a.Period)
}

// decodeLineAttrs converts the first NumAttrs raw attribute slots, keeping
// slot order. A slot with an unknown ID is dropped with a warning, the
// remaining slots are still decoded.
func decodeLineAttrs(raw *uapi.LineInfo, logger *logrus.Entry) []LineAttr {
	num := int(raw.NumAttrs)
	if num > len(raw.Attrs) {
		num = len(raw.Attrs)
	}

	attrs := make([]LineAttr, 0, num)
	for i := 0; i < num; i++ {
		a := &raw.Attrs[i]

		switch a.ID {
		case uapi.LineAttrIDFlags:
			attrs = append(attrs, FlagsAttr{Flags: LineFlags(a.Value64())})

		case uapi.LineAttrIDOutputValues:
			attrs = append(attrs, ValuesAttr{Values: a.Value64()})

		case uapi.LineAttrIDDebounce:
			attrs = append(attrs, DebounceAttr{Period: time.Duration(a.Value32()) * time.Microsecond})

		default:
			logger.Warn("Unknown GPIO line attribute ID: ", a.ID)
		}
	}

	return attrs
}
