package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/birkland/showid/metadata"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var lsOpts = struct {
	physical bool
	json     bool
}{}

var ls cli.Command = cli.Command{
	Name:  "ls",
	Usage: "List identifier records",
	Description: `List every item with an identifier record under the record root,
	along with its raw (unconverted) identifiers.`,
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "physical, p",
			Usage:       "Also list the directory holding each record",
			Destination: &lsOpts.physical,
		},
		cli.BoolFlag{
			Name:        "json, j",
			Usage:       "Print each record as a line of json",
			Destination: &lsOpts.json,
		},
	},

	Action: func(c *cli.Context) error {
		return lsAction()
	},
}

func lsAction() error {
	d, err := newDriver()
	if err != nil {
		return err
	}
	if !d.Available() {
		return errors.New("no record root given, use --root or SHOWID_ROOT")
	}

	return d.Walk(func(dir string, rec *metadata.Record) error {
		if lsOpts.json {
			return rec.Serialize(os.Stdout)
		}

		fields := []string{rec.Item.String()}
		for _, id := range rec.Identifiers {
			fields = append(fields, id.Type+":"+id.Value)
		}
		if lsOpts.physical {
			fields = append(fields, dir)
		}

		fmt.Println(strings.Join(fields, "    "))
		return nil
	})
}
