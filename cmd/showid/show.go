package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/birkland/showid"
	"github.com/birkland/showid/step"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var showOpts = struct {
	parallel int
}{}

const infoMessage = "The following persistent identifiers have been assigned to this item."

func show() cli.Command {
	return cli.Command{
		Name:  "show",
		Usage: "Show the identifier step of a submission",
		Description: `Given the ids (UUIDs) of items under submission, show the
	persistent identifiers each of them has been assigned, as the identifier
	step of the submission would.

	Which identifiers are shown is governed by the repository configuration
	property webui.submission.list-identifiers, e.g.

	  webui.submission.list-identifiers = doi, handle

	If it is absent or empty, all identifiers are shown.`,
		ArgsUsage: "item...",
		Flags:     parallelFlags(),
		Action: func(c *cli.Context) error {
			return showAction(c.Args(), false)
		},
	}
}

func review() cli.Command {
	return cli.Command{
		Name:  "review",
		Usage: "Show the identifier section of a submission review",
		Description: `Like show, but renders the read-only section of the submission
	review.  Identifiers are resolved again rather than reused from show.`,
		ArgsUsage: "item...",
		Flags:     parallelFlags(),
		Action: func(c *cli.Context) error {
			return showAction(c.Args(), true)
		},
	}
}

func parallelFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:        "parallel, p",
			Usage:       "Number of items to resolve at once",
			Value:       4,
			Destination: &showOpts.parallel,
		},
	}
}

func showAction(args []string, isReview bool) error {
	if len(args) == 0 {
		return fmt.Errorf("no items given")
	}

	items := make([]showid.Item, len(args))
	for i, arg := range args {
		item, err := showid.ParseItem(arg)
		if err != nil {
			return err
		}
		items[i] = item
	}

	props, err := loadConfig()
	if err != nil {
		return err
	}

	resolver, err := newResolver(props)
	if err != nil {
		return err
	}

	s := &step.Step{Config: props, Resolver: resolver}

	// Each item is rendered on its own; output is buffered so items print in
	// the order given.
	out := make([]bytes.Buffer, len(items))
	g := new(errgroup.Group)
	if showOpts.parallel > 0 {
		g.SetLimit(showOpts.parallel)
	}
	for i := range items {
		i := i
		g.Go(func() error {
			sub := step.Submission{Item: &items[i]}
			r := step.TextRenderer{W: &out[i], Heading: items[i].String()}
			if isReview {
				return s.Review(sub, r)
			}
			r.Info = infoMessage
			return s.Body(sub, r)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i := range out {
		if _, err := out[i].WriteTo(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}
