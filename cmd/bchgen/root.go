package main

import (
	"log/slog"

	"github.com/akalin/bchgen/config"
	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/fs"
	"github.com/akalin/bchgen/gf2"
	"github.com/akalin/bchgen/gf2n"
	"github.com/akalin/bchgen/primpoly"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

// app holds the state shared by all subcommands, filled in before
// each one runs.
type app struct {
	v          *viper.Viper
	configPath string
	json       bool
	verbose    bool

	config config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "bchgen",
		Short: "Generate primitive polynomials, GF(2^n) tables and BCH generator polynomials",
		Long: `bchgen looks up primitive polynomials over GF(2), builds the power
tables of the fields GF(2^n) they generate, partitions exponents into
cyclotomic cosets, and synthesizes polynomials from their roots,
including the generator polynomials of binary BCH codes.

Settings are read from config.yml in the working directory (or the
file named by --config) and from BCHGEN_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return xerrors.Errorf("%v: %w", err, errorcode.ErrInvalidParameter)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default ./config.yml)")
	flags.BoolVarP(&a.json, "json", "j", false, "Output in JSON format")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.Int("goroutines", 0, "Goroutines used to synthesize polynomials (default: logical cores)")
	flags.String("primitive-polynomials", "", "Primitive polynomial CSV table (default: built-in)")
	_ = a.v.BindPFlag(config.KeyGoroutines, flags.Lookup("goroutines"))
	_ = a.v.BindPFlag(config.KeyPrimitivePolynomials, flags.Lookup("primitive-polynomials"))

	rootCmd.AddCommand(
		newPrimitiveCommand(a),
		newTableCommand(a),
		newCosetsCommand(a),
		newRootsCommand(a),
		newBCHCommand(a),
		newSearchCommand(a),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	c, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.config = c

	level := c.LogLevel
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	a.logger.Debug("Loaded config",
		"primitive_polynomials", c.PrimitivePolynomials,
		"max_table_degree", c.MaxTableDegree,
		"max_coset_degree", c.MaxCosetDegree,
		"goroutines", c.Goroutines)
	return nil
}

func (a *app) source() primpoly.Source {
	delegate := logDelegate{a.logger}
	if a.config.PrimitivePolynomials == "" {
		return primpoly.DefaultSource(delegate)
	}
	return primpoly.NewSource(fs.DefaultFS{}, a.config.PrimitivePolynomials, delegate)
}

// primitive returns the polynomial given by poly if it's non-empty,
// or the class k primitive polynomial of degree n otherwise.
func (a *app) primitive(n, k int, poly string) (gf2.Poly64, error) {
	if poly == "" {
		return a.source().Lookup(n, k)
	}
	p, err := gf2.ParsePoly(poly)
	if err != nil {
		return 0, err
	}
	u, ok := p.Uint64()
	if !ok || p.Degree() != n {
		return 0, xerrors.Errorf("polynomial %s has degree %d, expected %d: %w", p, p.Degree(), n, errorcode.ErrDegreeMismatch)
	}
	return gf2.Poly64(u), nil
}

func (a *app) table(n, k int, poly string) (*gf2n.LogTable, error) {
	if err := a.config.CheckTableDegree(n); err != nil {
		return nil, err
	}
	p, err := a.primitive(n, k, poly)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Building table", "n", n, "primitive", p.String())
	return gf2n.NewLogTable(n, p)
}
