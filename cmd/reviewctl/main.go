// Command reviewctl browses and adds property reviews against a running API.
//
//	reviewctl show -id 1
//	reviewctl add -id 1 -name "Ann" -rating 5 -comment "Lovely stay"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/adapters/reviewsapi"
	"stayhub/internal/domain"
	"stayhub/internal/shared"
	"stayhub/internal/ui"
)

const usage = `usage:
  reviewctl show -id <property>
  reviewctl add  -id <property> -name <name> -rating <1-5> -comment <text>`

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	client, err := reviewsapi.New(cfg.APIBaseURL, cfg.ClientRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("bad API_BASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	switch os.Args[1] {
	case "show":
		err = runShow(ctx, client, os.Args[2:])
	case "add":
		err = runAdd(ctx, client, os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runShow(ctx context.Context, c *reviewsapi.Client, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.String("id", "", "property id")
	_ = fs.Parse(args)
	if *id == "" {
		return errors.New("show: -id is required")
	}

	if err := showProperty(ctx, os.Stdout, c, *id); err != nil {
		return err
	}

	v := ui.NewListView(c, nil)
	v.Show(ctx, *id)
	v.Wait()
	return ui.RenderReviews(os.Stdout, v.Snapshot())
}

type propertyGetter interface {
	GetProperty(ctx context.Context, id string) (domain.Property, error)
}

// showProperty prints the property header; a failed lookup prints a notice
// instead and the reviews are still shown.
func showProperty(ctx context.Context, w io.Writer, g propertyGetter, id string) error {
	p, err := g.GetProperty(ctx, id)
	switch {
	case errors.Is(err, reviewsapi.ErrNotFound):
		_, err = fmt.Fprintf(w, "Property %s not found\n\n", id)
		return err
	case err != nil:
		log.Warn().Err(err).Str("property_id", id).Msg("load property failed")
		_, err = fmt.Fprintf(w, "%s\n\n", ui.MsgPropertyLoadFailed)
		return err
	default:
		return ui.RenderProperty(w, p)
	}
}

func runAdd(ctx context.Context, c *reviewsapi.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	id := fs.String("id", "", "property id")
	name := fs.String("name", "", "your name")
	rating := fs.Int("rating", 0, "rating from 1 to 5")
	comment := fs.String("comment", "", "review text")
	_ = fs.Parse(args)
	if *id == "" {
		return errors.New("add: -id is required")
	}

	snaps := make(chan ui.ListSnapshot, 8)
	v := ui.NewListView(c, func(s ui.ListSnapshot) {
		if s.State != ui.StateLoading {
			snaps <- s
		}
	})
	v.Show(ctx, *id)
	<-snaps

	n := ui.NewNotifier()
	stop := v.Watch(ctx, n)
	defer stop()

	f := ui.NewForm(*id, c, ui.AnonymousIdentity{}, n)
	defer f.Close()
	f.SetRating(*rating)
	f.SetUserName(*name)
	f.SetComment(*comment)

	if err := f.Submit(ctx); err != nil {
		return errors.New(f.State().Error)
	}
	fmt.Fprintln(os.Stdout, ui.MsgThanks)
	fmt.Fprintln(os.Stdout)

	select {
	case s := <-snaps:
		return ui.RenderReviews(os.Stdout, s)
	case <-ctx.Done():
		return ctx.Err()
	}
}
