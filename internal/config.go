package internal

import (
	"fmt"
	"time"
)

type Config struct {
	BufferSize       int           `env:"BUFFER_SIZE,required=true"`
	CharReplacement  string        `env:"CHARACTER_REPLACEMENT,required=true"`
	LimitIdeas       *int          `env:"LIMIT_IDEAS"`
	SinkTimeout      time.Duration `env:"SINK_TIMEOUT,required=true"`
	MetricInterval   time.Duration `env:"METRIC_INTERVAL,required=true"`
	GeneratorTimeout time.Duration `env:"GENERATOR_TIMEOUT,required=true"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,required=true"`
	BadgerFilepath   string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath    string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel         string        `env:"LOG_LEVEL,required=true"`
	DebugPort        int           `env:"DEBUG_PORT,default=6060"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
