package cli

import (
	"context"
	"fmt"
)

// Staff renders the department overview and the staff activity feed.
func (a *App) Staff(ctx context.Context) error {
	section(a.out, "Staff Management Center")

	tw := newTable(a.out)
	fmt.Fprintln(tw, "DEPARTMENT\tHEADCOUNT\tAVG SALARY\tPERFORMANCE\tSATISFACTION\tRETENTION")
	for _, d := range a.world.Departments() {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			d.Name, d.Headcount, d.AvgSalary, d.Performance, d.Satisfaction, d.Retention)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, "Recent Activity")
	tw = newTable(a.out)
	for _, act := range a.world.StaffActivity() {
		fmt.Fprintf(tw, "%s\t%s\n", act.Text, act.Time)
	}
	return tw.Flush()
}
