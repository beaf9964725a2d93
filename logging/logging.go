package logging

import (
	"io"
	"os"
	"time"

	"github.com/darkroomtools/easeld/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

// Shared structured-log field names.
const (
	FieldFunc   = "func"
	FieldEvent  = "event"
	FieldParams = "params"
	FieldResult = "result"

	TraceIDKey = "trace_id"
)

type ObjectWithLevel interface {
	MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level)
}

type withLevel struct {
	level zerolog.Level
	obj   ObjectWithLevel
}

func WithLevel(level zerolog.Level, obj ObjectWithLevel) *withLevel {
	if obj == nil {
		return nil
	}
	return &withLevel{level: level, obj: obj}
}

func (w *withLevel) MarshalZerologObject(e *zerolog.Event) {
	w.obj.MarshalZerologObjectWithLevel(e, w.level)
}

func StrIf(e *zerolog.Event, k string, v *string) {
	if v != nil {
		e.Str(k, *v)
	}
}

// LoadLogging configures the global zerolog logger. When EASELD_LOG_CONFIG
// points at a zeroconfig yaml file it is compiled as-is; without it the
// logger falls back to a console writer on stderr at info level, so the
// bare calc CLI stays usable with no environment at all.
func LoadLogging() {
	path := config.GetLogConfigPath()
	if path == "" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(zerolog.InfoLevel).
			With().Timestamp().Logger()
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not readable")
		panic(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not readable")
		panic(err)
	}

	var cfg zeroconfig.Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not valid yaml")
		panic(err)
	}

	logger, err := cfg.Compile()
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not valid for zerolog, see go.mau.fi/zeroconfig documentation")
		panic(err)
	}
	log.Logger = *logger
}
