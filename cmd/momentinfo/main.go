// Command momentinfo prints the component layout of a multipole moment
// basis.
//
// Usage:
//
//	momentinfo [flags] [convention ...]
//
// Without arguments it prints the layout for all conventions.
//
// Examples:
//
//	momentinfo -lmax 2 cartesian
//	momentinfo -lmax 4 pure
//	momentinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-grid/moments"
)

type conventionEntry struct {
	name string
	typ  moments.Type
}

var registry = []conventionEntry{
	{"cartesian", moments.TypeCartesian},
	{"pure", moments.TypePure},
	{"radial", moments.TypeRadial},
}

func main() {
	lmax := flag.Int("lmax", 2, "maximum angular order")
	list := flag.Bool("list", false, "list available conventions")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: momentinfo [flags] [convention ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the component layout of a multipole moment basis.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the layout for all conventions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  momentinfo -lmax 2 cartesian\n")
		fmt.Fprintf(os.Stderr, "  momentinfo -lmax 4 pure\n")
		fmt.Fprintf(os.Stderr, "  momentinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching conventions\n")
		os.Exit(1)
	}

	for _, e := range entries {
		if err := printLayout(e, *lmax); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func resolveEntries(names []string) []conventionEntry {
	byName := make(map[string]conventionEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []conventionEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown convention %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printLayout(e conventionEntry, lmax int) error {
	n, err := moments.Count(lmax, e.typ)
	if err != nil {
		return err
	}

	fmt.Printf("%s, lmax=%d, %d components\n", e.name, lmax, n)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Index\tOrder\tComponent\n")
	fmt.Fprintf(tw, "-----\t-----\t---------\n")
	i := 0
	for _, c := range componentLabels(e.typ, lmax) {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", i, c.order, c.label)
		i++
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

type component struct {
	order int
	label string
}

func componentLabels(t moments.Type, lmax int) []component {
	var out []component
	switch t {
	case moments.TypeCartesian:
		for l := 0; l <= lmax; l++ {
			for a := l; a >= 0; a-- {
				for b := l - a; b >= 0; b-- {
					out = append(out, component{l, monomialLabel(a, b, l-a-b)})
				}
			}
		}
	case moments.TypePure:
		for l := 0; l <= lmax; l++ {
			out = append(out, component{l, fmt.Sprintf("C%d,0", l)})
			for m := 1; m <= l; m++ {
				out = append(out, component{l, fmt.Sprintf("C%d,%d", l, m)})
				out = append(out, component{l, fmt.Sprintf("S%d,%d", l, m)})
			}
		}
	case moments.TypeRadial:
		for l := 0; l <= lmax; l++ {
			out = append(out, component{l, monomialPower("r", l)})
		}
	}
	return out
}

func monomialLabel(a, b, c int) string {
	if a == 0 && b == 0 && c == 0 {
		return "1"
	}
	var sb strings.Builder
	sb.WriteString(monomialPower("x", a))
	sb.WriteString(monomialPower("y", b))
	sb.WriteString(monomialPower("z", c))
	return sb.String()
}

func monomialPower(v string, n int) string {
	switch n {
	case 0:
		if v == "r" {
			return "1"
		}
		return ""
	case 1:
		return v
	default:
		return fmt.Sprintf("%s^%d", v, n)
	}
}
