package cli

import (
	"context"
	"fmt"
)

// Alliances renders the available alliances with their benefits and
// requirements.
func (a *App) Alliances(ctx context.Context) error {
	section(a.out, "Alliances")

	for _, al := range a.world.Alliances() {
		fmt.Fprintf(a.out, "\n%s (%s, %d members)\n", al.Name, al.Level, al.Members)
		for _, b := range al.Benefits {
			fmt.Fprintf(a.out, "  - %s\n", b)
		}
		fmt.Fprintf(a.out, "  Requirements: %s\n", al.Requirements)
	}
	return nil
}
