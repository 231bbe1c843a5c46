// Package flogging sets up the op/go-logging loggers used by the executables.
package flogging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

const (
	pkgLogID      = "flogging"
	defaultFormat = "%{color}%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{shortfunc} -> %{level:.4s} %{id:03x}%{color:reset} %{message}"
	defaultLevel  = logging.INFO
)

var (
	logger *logging.Logger

	modules map[string]string // module name to its current level.
	lock    sync.Mutex
)

func init() {
	modules = make(map[string]string)
	logger = logging.MustGetLogger(pkgLogID)
	Reset()
}

// Reset logging to the default format on stderr, at the default level.
func Reset() {
	InitBackend(SetFormat(defaultFormat), os.Stderr)
	InitFromSpec("")
}

// SetFormat returns the formatter for formatSpec, or the default one when it is empty.
func SetFormat(formatSpec string) logging.Formatter {
	if formatSpec == "" {
		formatSpec = defaultFormat
	}
	return logging.MustStringFormatter(formatSpec)
}

// InitBackend sends every log record to output through formatter.
func InitBackend(formatter logging.Formatter, output io.Writer) {
	backend := logging.NewLogBackend(output, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter)).SetLevel(defaultLevel, "")
}

func DefaultLevel() string {
	return defaultLevel.String()
}

// GetModuleLevel gets the current logging level for module.
func GetModuleLevel(module string) string {
	return logging.GetLevel(module).String()
}

// SetModuleLevel sets the logging level of module.
func SetModuleLevel(module, level string) (string, error) {
	l, err := logging.LogLevel(level)
	if err != nil {
		logger.Warningf("Invalid logging level '%s' - ignored", level)
		return "", err
	}
	logging.SetLevel(l, module)
	lock.Lock()
	modules[module] = l.String()
	lock.Unlock()
	logger.Debugf("Module '%s' logger enabled for log level '%s'", module, l)
	return l.String(), nil
}

// MustGetLogger is used in place of logging.MustGetLogger so that the levels of all
// modules that have loggers are known.
func MustGetLogger(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	lock.Lock()
	defer lock.Unlock()
	modules[module] = GetModuleLevel(module)
	return l
}

// InitFromSpec initializes the levels from spec, which has the form
//
//	[<module>[,<module>...]=]<level>[:[<module>[,<module>...]=]<level>...]
//
// A bare level applies to every module. It returns the level of all modules.
func InitFromSpec(spec string) string {
	levelAll := defaultLevel
	var err error

	if spec != "" {
		for _, field := range strings.Split(spec, ":") {
			split := strings.Split(field, "=")
			switch len(split) {
			case 1:
				if levelAll, err = logging.LogLevel(field); err != nil {
					logger.Warningf("Logging level '%s' not recognized, defaulting to '%s': %s", field, defaultLevel, err)
					levelAll = defaultLevel
				}
			case 2:
				levelSingle, err := logging.LogLevel(split[1])
				if err != nil {
					logger.Warningf("Invalid logging level in '%s' ignored", field)
					continue
				}
				if split[0] == "" {
					logger.Warningf("Invalid logging override specification '%s' ignored - no module specified", field)
					continue
				}
				for _, module := range strings.Split(split[0], ",") {
					logging.SetLevel(levelSingle, module)
				}
			default:
				logger.Warningf("Invalid logging override '%s' ignored - missing ':'?", field)
			}
		}
	}

	logging.SetLevel(levelAll, "")

	lock.Lock()
	names := make([]string, 0, len(modules))
	for k := range modules {
		names = append(names, k)
	}
	lock.Unlock()
	for _, k := range names {
		MustGetLogger(k)
	}
	MustGetLogger(pkgLogID)

	return levelAll.String()
}
