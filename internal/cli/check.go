package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/dom"
	"github.com/wisdomalbert/portfolio/internal/nav"
	"github.com/wisdomalbert/portfolio/internal/page"
	"github.com/wisdomalbert/portfolio/internal/view"
)

// ErrCheckFailed is returned when the page fails a headless check.
var ErrCheckFailed = errors.New("page check failed")

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Mount the page headlessly and verify content and anchors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Check(cmd.OutOrStdout(), page.DefaultOptions())
		},
	}
}

// Check validates the tables, mounts the page in every menu state and
// verifies each scroll link resolves and the scroll listener is released
// on unmount.
func Check(w io.Writer, opts page.Options) error {
	var errs []error
	if err := content.Validate(); err != nil {
		errs = append(errs, err)
	}

	win := dom.NewWindow()
	host := dom.NewHost(func(s nav.State) *view.Node {
		o := opts
		o.Nav = s
		return page.Build(o)
	}, win)
	if err := host.Mount(); err != nil {
		return err
	}

	links := 0
	for _, open := range []bool{false, true} {
		if host.Bar().State().MenuOpen != open {
			host.Bar().ToggleMenu()
		}
		doc := host.Document()
		for _, n := range view.FindAll(doc.Root(), view.HasAction(view.ScrollTo)) {
			links++
			if _, ok := doc.ElementByID(n.Action.Target); !ok {
				errs = append(errs, fmt.Errorf("%w: link %q targets missing section %q",
					ErrCheckFailed, view.TextContent(n), n.Action.Target))
			}
		}
	}
	for _, l := range content.NavLinks() {
		if _, ok := host.Document().ElementByID(l.ID); !ok {
			errs = append(errs, fmt.Errorf("%w: nav section %q not rendered", ErrCheckFailed, l.ID))
		}
	}

	host.Unmount()
	if n := win.Listeners(); n != 0 {
		errs = append(errs, fmt.Errorf("%w: %d scroll listeners left after unmount", ErrCheckFailed, n))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "ok: %d scroll links, %d sections\n", links, len(content.NavLinks()))
	return err
}
