package config

import (
	"flag"
	"io"
)

// flagValues records which flags were given explicitly, so that only those
// override values from the environment and the JSON file.
type flagValues struct {
	configFile string
	set        map[string]string
}

// parseFlags reads the supported flags from args (os.Args[1:] in production):
//
//	-a string      backend API base URL
//	-s string      session backend: sqlite, redis or memory
//	-d string      SQLite session database path
//	-l string      log level
//	-c / -config   path to a JSON config file
func parseFlags(args []string) (*flagValues, error) {
	fs := flag.NewFlagSet("blog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fv := &flagValues{set: make(map[string]string)}

	fs.String("a", "", "backend API base URL")
	fs.String("s", "", "session backend (sqlite, redis, memory)")
	fs.String("d", "", "session database path")
	fs.String("l", "", "log level (debug, info, warn, error)")
	fs.StringVar(&fv.configFile, "config", "", "path to config file")
	fs.StringVar(&fv.configFile, "c", "", "path to config file (short)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		fv.set[f.Name] = f.Value.String()
	})
	return fv, nil
}

func (fv *flagValues) apply(cfg *Config) {
	if v, ok := fv.set["a"]; ok {
		cfg.APIBaseURL = v
	}
	if v, ok := fv.set["s"]; ok {
		cfg.SessionBackend = v
	}
	if v, ok := fv.set["d"]; ok {
		cfg.SessionDSN = v
	}
	if v, ok := fv.set["l"]; ok {
		cfg.LogLevel = v
	}
}
