package main

import (
	"errors"
	"flag"
	"io"

	"github.com/MKhiriev/sealed-vitae/internal/config"
)

const (
	defaultManifest = "data/manifest.json"
	defaultOutput   = "data/resume.bin"
)

type options struct {
	manifest string
	output   string
	dsn      string
	driver   string
	baseURL  string
	copy     bool
	logLevel string
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("sealer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.manifest, "m", defaultManifest, "manifest JSON: [{\"credential\": \"...\", \"record\": \"file.json\"}]")
	fs.StringVar(&opts.output, "o", defaultOutput, "bundle output file")
	fs.StringVar(&opts.dsn, "d", "", "database DSN; when set the bundle is written to the database instead of -o")
	fs.StringVar(&opts.driver, "driver", config.DriverPostgres, "database driver: pgx or sqlite3")
	fs.StringVar(&opts.baseURL, "base-url", "", "site URL used to print share links")
	fs.BoolVar(&opts.copy, "copy", false, "copy the first share link to the clipboard")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.manifest == "" {
		return options{}, errors.New("manifest path is empty")
	}
	if opts.dsn == "" && opts.output == "" {
		return options{}, errors.New("either -o or -d must be set")
	}
	if opts.copy && opts.baseURL == "" {
		return options{}, errors.New("-copy requires -base-url")
	}

	return opts, nil
}

func (o options) storage() config.Storage {
	if o.dsn != "" {
		return config.Storage{DB: config.DB{DSN: o.dsn, Driver: o.driver}}
	}
	return config.Storage{Files: config.Files{BundlePath: o.output}}
}
