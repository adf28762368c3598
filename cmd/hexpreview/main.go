// hexpreview draws a single pattern on the hex lattice in the terminal, for
// checking a registry entry by eye before rendering it.
//
// Run: GOWORK=off go run ./cmd/hexpreview/ -start NORTH_EAST -angles qaq
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/wesen/hexrender/pkg/pattern"
	"github.com/wesen/hexrender/pkg/termview"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("hexpreview", flag.ContinueOnError)
	start := fs.String("start", "EAST", "start direction, e.g. NORTH_EAST")
	angles := fs.String("angles", "", "angle string over w e d s a q")
	spacing := fs.Int("spacing", 2, "terminal cells per lattice step")
	leadStroke := fs.Bool("lead-stroke", false, "step toward the start direction before the first turn")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *spacing < 1 {
		return fmt.Errorf("spacing %d must be at least 1", *spacing)
	}

	p, err := pattern.Parse(*start, *angles)
	if err != nil {
		return err
	}
	conv := pattern.DefaultConvention
	if *leadStroke {
		conv = pattern.LeadStroke
	}
	t := pattern.BuildWith(p, conv)
	buf := termview.Draw(t, *spacing)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff6bff")).
		Bold(true).
		Underline(true)
	legend := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, title.Render("  "+p.String()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, buf.Render(termview.DefaultStyles(t.Segments())))
	fmt.Fprintln(w)
	fmt.Fprintln(w, legend.Render(fmt.Sprintf("  ◆ start  • vertex  %d segments  %v", t.Segments(), conv)))
	fmt.Fprintln(w)
	return nil
}
