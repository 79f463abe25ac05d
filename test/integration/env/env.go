package env

import (
	"os"
	"strings"
)

// Key is a declared environment variable name.
type Key string

const (
	Home       Key = "HOME"
	ConfigHome Key = "XDG_CONFIG_HOME"
	CacheHome  Key = "XDG_CACHE_HOME"
	LogFile    Key = "TUIRUN_LOG_FILE"
	LogLevel   Key = "TUIRUN_LOG_LEVEL"
	HostRoot   Key = "TUIRUN_SANDBOX_HOST_ROOT"
	CI         Key = "CI"
)

// Get returns the value of the given environment variable.
func Get(key Key) string {
	return os.Getenv(string(key))
}

// Environ is a slice of "KEY=value" environment variable strings.
type Environ []string

// Without returns the current process environment excluding the given keys.
func Without(keys ...Key) Environ {
	return Environ(os.Environ()).Without(keys...)
}

// With returns the current process environment with key=value appended.
func With(key Key, value string) Environ {
	return Environ(os.Environ()).With(key, value)
}

// Without returns a copy of e excluding any variable whose key matches one of the given keys.
func (e Environ) Without(keys ...Key) Environ {
	var result Environ
	for _, entry := range e {
		excluded := false
		for _, key := range keys {
			if strings.HasPrefix(entry, string(key)+"=") {
				excluded = true
				break
			}
		}
		if !excluded {
			result = append(result, entry)
		}
	}
	return result
}

// With returns a copy of e with key=value appended.
func (e Environ) With(key Key, value string) Environ {
	return append(e, string(key)+"="+value)
}
