package cli

import (
	"context"
	"fmt"
)

// Shop renders the product catalog grouped by category.
func (a *App) Shop(ctx context.Context) error {
	section(a.out, "Shop")

	tw := newTable(a.out)
	fmt.Fprintln(tw, "CATEGORY\tPRODUCT\tPRICE\tRATING")
	for _, p := range a.world.Products() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\n", p.Category, p.Name, p.Price, p.Rating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, p := range a.world.Products() {
		fmt.Fprintf(a.out, "\n%s: %s\n", p.Name, p.Description)
	}
	return nil
}
