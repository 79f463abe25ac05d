package env

import (
	"strings"

	"github.com/spf13/viper"
)

// Prefix is prepended to every configuration key looked up in the
// environment: render.fps is read from TUIRUN_RENDER_FPS.
const Prefix = "TUIRUN"

// Init binds configuration keys to environment variables.
func Init() {
	viper.SetEnvPrefix(Prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
