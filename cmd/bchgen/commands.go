package main

import (
	"fmt"

	"github.com/akalin/bchgen/bch"
	"github.com/akalin/bchgen/cyclotomic"
	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/generator"
	"github.com/akalin/bchgen/gf2"
	"github.com/akalin/bchgen/primpoly"
	"github.com/bits-and-blooms/bitset"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

// fieldFlags are the flags that pick the field GF(2^n) to work in.
type fieldFlags struct {
	n     int
	class int
	poly  string
}

func (f *fieldFlags) register(cmd *cobra.Command, withPoly bool) {
	cmd.Flags().IntVar(&f.n, "n", 0, "Field exponent n, for GF(2^n)")
	cmd.Flags().IntVarP(&f.class, "class", "k", primpoly.MinClass, "Primitive polynomial class (1: trinomial, 2: pentanomial, 3: heptanomial)")
	_ = cmd.MarkFlagRequired("n")
	if withPoly {
		cmd.Flags().StringVarP(&f.poly, "poly", "p", "", "Primitive polynomial to use instead of the table's, e.g. 0x13 or x^4+x+1")
		cmd.MarkFlagsMutuallyExclusive("class", "poly")
	}
}

func newPrimitiveCommand(a *app) *cobra.Command {
	var f fieldFlags
	cmd := &cobra.Command{
		Use:   "primitive",
		Short: "Look up a primitive polynomial of degree n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.source().Lookup(f.n, f.class)
			if err != nil {
				return err
			}
			poly := gf2.FromUint64(uint64(p))
			w := cmd.OutOrStdout()
			if a.json {
				return writeJSON(w, struct {
					N          int      `json:"n"`
					Class      int      `json:"class"`
					Polynomial polyJSON `json:"polynomial"`
				}{f.n, f.class, toPolyJSON(poly)})
			}
			writePoly(w, poly)
			return nil
		},
	}
	f.register(cmd, false)
	return cmd
}

func newTableCommand(a *app) *cobra.Command {
	var f fieldFlags
	var check bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the power table of GF(2^n)",
		Long: `Print α^i for each exponent i in [-1, 2^n-2], where α is a root of
the primitive polynomial and α^-1 stands for zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := a.table(f.n, f.class, f.poly)
			if err != nil {
				return err
			}
			if check {
				if err := table.CheckPrimitive(); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if a.json {
				elements := make([]uint64, 0, table.Len())
				for exp := -1; exp < table.Order(); exp++ {
					elements = append(elements, uint64(table.Element(exp)))
				}
				return writeJSON(w, struct {
					N         int      `json:"n"`
					Primitive polyJSON `json:"primitive"`
					Elements  []uint64 `json:"elements"`
				}{f.n, toPolyJSON(gf2.FromUint64(uint64(table.Primitive()))), elements})
			}

			headerColor.Fprintf(w, "GF(2^%d) generated by %s\n", f.n, table.Primitive())
			// Wide enough for both -1 and the largest exponent.
			width := len(fmt.Sprint(table.Order() - 1))
			if width < 2 {
				width = 2
			}
			for exp := -1; exp < table.Order(); exp++ {
				fmt.Fprintf(w, "%*d  %0*b\n", width, exp, f.n, uint64(table.Element(exp)))
			}
			if check {
				okColor.Fprintln(w, "✓ primitive")
			}
			return nil
		},
	}
	f.register(cmd, true)
	cmd.Flags().BoolVar(&check, "check", false, "Fail unless the powers of α cover every nonzero element")
	return cmd
}

func newCosetsCommand(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "cosets",
		Short: "Print the cyclotomic cosets of 2 mod 2^n - 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.config.CheckCosetDegree(n); err != nil {
				return err
			}
			cosets, err := cyclotomic.Cosets(n)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				members := make([][]int, len(cosets))
				for i, coset := range cosets {
					members[i] = cyclotomic.Members(coset)
				}
				return writeJSON(w, members)
			}
			for _, coset := range cosets {
				fmt.Fprintln(w, formatSet(cyclotomic.Members(coset)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 0, "Field exponent n, for GF(2^n)")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newRootsCommand(a *app) *cobra.Command {
	var f fieldFlags
	var exps []int
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Synthesize the polynomial with roots α^r for the given exponents r",
		Long: `Synthesize the polynomial with roots α^r for the given exponents r.

If the exponents aren't a union of cyclotomic cosets, the coefficients
don't all lie in GF(2), and the printed bits combine them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := a.table(f.n, f.class, f.poly)
			if err != nil {
				return err
			}
			// Checked before Set, since the bitset grows to the
			// largest exponent.
			roots := bitset.New(uint(table.Order()))
			for _, e := range exps {
				if e < 0 || e >= table.Order() {
					return xerrors.Errorf("root exponent %d not in [0, %d]: %w", e, table.Order()-1, errorcode.ErrInvalidParameter)
				}
				roots.Set(uint(e))
			}
			p, err := generator.FromRoots(roots, table, generator.Options{NumGoroutines: a.config.Goroutines})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				return writeJSON(w, struct {
					N          int      `json:"n"`
					Roots      []int    `json:"roots"`
					Polynomial polyJSON `json:"polynomial"`
				}{f.n, cyclotomic.Members(roots), toPolyJSON(p)})
			}
			writePoly(w, p)
			return nil
		},
	}
	f.register(cmd, true)
	cmd.Flags().IntSliceVarP(&exps, "roots", "r", nil, "Root exponents, e.g. 1,2,4,8")
	_ = cmd.MarkFlagRequired("roots")
	return cmd
}

type factorJSON struct {
	Coset      []int    `json:"coset"`
	Polynomial polyJSON `json:"polynomial"`
}

func newBCHCommand(a *app) *cobra.Command {
	var f fieldFlags
	var distance int
	cmd := &cobra.Command{
		Use:   "bch",
		Short: "Compute the generator polynomial of a narrow-sense BCH code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := a.table(f.n, f.class, f.poly)
			if err != nil {
				return err
			}
			code, err := bch.New(table, distance, bch.Options{
				NumGoroutines: a.config.Goroutines,
				Delegate:      logDelegate{a.logger},
			})
			if err != nil {
				return err
			}
			if err := code.Verify(table); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				factors := make([]factorJSON, len(code.MinimalPolynomials))
				for i, factor := range code.MinimalPolynomials {
					factors[i] = factorJSON{cyclotomic.Members(factor.Coset), toPolyJSON(factor.Polynomial)}
				}
				return writeJSON(w, struct {
					Length             int          `json:"length"`
					Dimension          int          `json:"dimension"`
					DesignedDistance   int          `json:"designed_distance"`
					Generator          polyJSON     `json:"generator"`
					Roots              []int        `json:"roots"`
					MinimalPolynomials []factorJSON `json:"minimal_polynomials"`
				}{code.Length, code.Dimension, code.DesignedDistance, toPolyJSON(code.Generator), cyclotomic.Members(code.Roots), factors})
			}

			headerColor.Fprintf(w, "BCH(%d, %d), designed distance %d\n", code.Length, code.Dimension, code.DesignedDistance)
			fmt.Fprint(w, "generator: ")
			writePoly(w, code.Generator)
			for _, factor := range code.MinimalPolynomials {
				rep, _ := cyclotomic.Representative(factor.Coset)
				fmt.Fprintf(w, "  m_%d %s: ", rep, formatSet(cyclotomic.Members(factor.Coset)))
				writePoly(w, factor.Polynomial)
			}
			return nil
		},
	}
	f.register(cmd, true)
	cmd.Flags().IntVarP(&distance, "distance", "d", 0, "Designed distance, in [2, 2^n - 1]")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}

func newSearchCommand(a *app) *cobra.Command {
	var f fieldFlags
	var row bool
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for a primitive polynomial of degree n without the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if row {
				r, err := primpoly.FormatRow(f.n)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, r)
				return nil
			}

			p, err := primpoly.Search(f.n, f.class)
			if err != nil {
				return err
			}
			a.logger.Debug("Found primitive polynomial", "n", f.n, "class", f.class, "polynomial", p.String())
			poly := gf2.FromUint64(uint64(p))
			if a.json {
				return writeJSON(w, struct {
					N          int      `json:"n"`
					Class      int      `json:"class"`
					Polynomial polyJSON `json:"polynomial"`
				}{f.n, f.class, toPolyJSON(poly)})
			}
			writePoly(w, poly)
			return nil
		},
	}
	f.register(cmd, false)
	cmd.Flags().BoolVar(&row, "row", false, "Print every class as a primitive polynomial table row")
	return cmd
}
