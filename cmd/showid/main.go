package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/birkland/showid"
	"github.com/birkland/showid/canon"
	"github.com/birkland/showid/config"
	"github.com/birkland/showid/drivers/fs"
	"github.com/birkland/showid/fspath"
	"github.com/birkland/showid/resolv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli"
)

var mainOpts = struct {
	root   string
	config string
	layout string
	debug  bool
}{}

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	app := cli.NewApp()
	app.Name = "showid"
	app.Usage = "Show the persistent identifiers of items under submission"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		show(),
		review(),
		ls,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "root, r",
			Usage:       "Identifier record root directory",
			EnvVar:      "SHOWID_ROOT",
			Destination: &mainOpts.root,
		},
		cli.StringFlag{
			Name:        "config, c",
			Usage:       "Repository configuration file (.cfg, .properties, .yaml)",
			EnvVar:      "SHOWID_CONFIG",
			Destination: &mainOpts.config,
		},
		cli.StringFlag{
			Name:        "layout, l",
			Usage:       "Record directory layout {search, flat, pairtree}",
			EnvVar:      "SHOWID_LAYOUT",
			Value:       "search",
			Destination: &mainOpts.layout,
		},
		cli.BoolFlag{
			Name:        "debug, d",
			Usage:       "Log diagnostics, e.g. identifiers that could not be resolved",
			Destination: &mainOpts.debug,
		},
	}
	app.Before = func(c *cli.Context) error {
		level := zerolog.ErrorLevel
		if mainOpts.debug {
			level = zerolog.DebugLevel
		}
		logger = logger.Level(level)
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		logger.Fatal().Err(err).Msg("showid failed")
	}
}

// layouts maps layout names to record path generators.  Records in the
// search layout may be anywhere under the root.
var layouts = map[string]fspath.Generator{
	"search":   nil,
	"flat":     fspath.Passthrough,
	"pairtree": fspath.Pairtree,
}

func itemPath(layout string) (fspath.Generator, error) {
	if layout == "" {
		return nil, nil
	}
	gen, ok := layouts[strings.ToLower(layout)]
	if !ok {
		return nil, fmt.Errorf("unknown record layout %q", layout)
	}
	return gen, nil
}

func newDriver() (*fs.Driver, error) {
	gen, err := itemPath(mainOpts.layout)
	if err != nil {
		return nil, err
	}

	d, err := fs.NewDriver(fs.Config{Root: mainOpts.root, ItemPath: gen, Log: &logger})
	if err != nil {
		return nil, errors.Wrapf(err, "could not initialize file driver")
	}
	return d, nil
}

// newResolver wires the identifier record driver and the repository
// configuration into a resolver.  Without a record root, the resolver has no
// identifier service and resolves nothing.
func newResolver(props showid.ConfigSource) (*resolv.Resolver, error) {
	d, err := newDriver()
	if err != nil {
		return nil, err
	}

	handlePrefix, _ := props.Property(canon.HandlePrefixKey)
	doiResolver, _ := props.Property(canon.DOIResolverKey)

	return &resolv.Resolver{
		Lookup:  d,
		Handles: canon.Handle{Prefix: handlePrefix},
		DOIs:    canon.DOI{Resolver: doiResolver},
		Log:     &logger,
	}, nil
}

func loadConfig() (*config.Properties, error) {
	props, err := config.Load(mainOpts.config)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load configuration")
	}
	return props, nil
}
