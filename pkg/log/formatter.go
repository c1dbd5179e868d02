package log

import (
	"github.com/sirupsen/logrus"
)

// FieldKeyComponent is the field name under which the current component title is logged.
const FieldKeyComponent = "component"

// NewTextFormatter returns the formatter used for terminal output.
func NewTextFormatter(colors bool) logrus.Formatter {
	return &logrus.TextFormatter{
		DisableColors:    !colors,
		ForceColors:      colors,
		DisableTimestamp: true,
		PadLevelText:     true,
	}
}
