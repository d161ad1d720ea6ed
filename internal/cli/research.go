package cli

import (
	"context"
	"fmt"
)

// Research renders the technology tree with levels and progress.
func (a *App) Research(ctx context.Context) error {
	section(a.out, "Research Center")

	tw := newTable(a.out)
	fmt.Fprintln(tw, "BRANCH\tTECHNOLOGY\tLEVEL\tPROGRESS\tCOST")
	for _, t := range a.world.Technologies() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d%%\t%s\n", t.Branch, t.Name, t.Level, t.Progress, t.Cost)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, t := range a.world.Technologies() {
		fmt.Fprintf(a.out, "\n%s:\n", t.Name)
		for _, b := range t.Benefits {
			fmt.Fprintf(a.out, "  - %s\n", b)
		}
	}
	return nil
}
