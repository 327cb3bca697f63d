package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/typoscale/config"
	"github.com/npillmayer/typoscale/scale"
	"github.com/spf13/cobra"
)

// options holds the global flags.
type options struct {
	configFile string
	verbose    bool
	base       float64
	ratio      string
	positive   int
	negative   int
	advanced   bool
	fluid      bool
	locks      bool
	rem        bool
	sass       bool
	prefix     string

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "typoscale",
		Short: "Typoscale - modular type scale calculator",
		Long: `Typoscale computes a modular typographic scale from a base size and a
ratio, and renders it as CSS custom properties, element rules and
optional SASS variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "typoscale"})
			if opts.verbose {
				opts.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	pf.Float64Var(&opts.base, "base", 0, "base size in px")
	pf.StringVar(&opts.ratio, "ratio", "", "modular ratio, a number or a name (see 'typoscale ratios')")
	pf.IntVar(&opts.positive, "positive", 0, "number of steps above the base")
	pf.IntVar(&opts.negative, "negative", 0, "number of steps below the base")
	pf.BoolVar(&opts.advanced, "advanced", false, "use advanced step spacing")
	pf.BoolVar(&opts.fluid, "fluid", false, "interpolate sizes between viewport widths")
	pf.BoolVar(&opts.locks, "locks", false, "render fluid sizes as CSS locks")
	pf.BoolVar(&opts.rem, "rem", true, "use rem for preferred sizes, --rem=false for px")
	pf.BoolVar(&opts.sass, "sass", false, "append SASS variables")
	pf.StringVar(&opts.prefix, "prefix", "", "custom property prefix")

	root.AddCommand(
		newCSSCmd(opts),
		newStepsCmd(opts),
		newPreviewCmd(opts),
		newOutlineCmd(opts),
		newDotCmd(opts),
		newRatiosCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// configuration assembles the effective configuration: defaults, then the
// configuration file, then flags set on the command line. The result is
// not validated yet.
func (opts *options) configuration(cmd *cobra.Command) (scale.Config, error) {
	cfg := scale.Default()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return cfg, err
		}
		opts.logger.Debug("loaded configuration", "path", opts.configFile)
	}
	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.BaseSize = opts.base
	}
	if flags.Changed("ratio") {
		r, err := parseRatio(opts.ratio)
		if err != nil {
			return cfg, err
		}
		cfg.Ratio = r
	}
	if flags.Changed("positive") {
		cfg.PositiveSteps = opts.positive
	}
	if flags.Changed("negative") {
		cfg.NegativeSteps = opts.negative
	}
	if flags.Changed("advanced") {
		cfg.Advanced = opts.advanced
	}
	if flags.Changed("fluid") {
		cfg.Fluid = opts.fluid
	}
	if flags.Changed("locks") {
		cfg.CSSLocks = opts.locks
	}
	if flags.Changed("rem") {
		cfg.UseRem = opts.rem
	}
	if flags.Changed("sass") {
		cfg.Sass = opts.sass
	}
	if flags.Changed("prefix") {
		cfg.Prefix = opts.prefix
	}
	return cfg, nil
}

// generate computes the scale for the effective configuration.
func (opts *options) generate(cmd *cobra.Command) (scale.Scale, scale.Config, error) {
	cfg, err := opts.configuration(cmd)
	if err != nil {
		return scale.Scale{}, cfg, err
	}
	s, err := scale.Generate(cfg)
	if err != nil {
		return s, cfg, err
	}
	lo, hi := s.Range()
	opts.logger.Debug("generated scale", "from", lo, "to", hi, "fluid", cfg.Fluid, "mobile", s.HasMobile())
	return s, cfg, nil
}

func parseRatio(s string) (float64, error) {
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return x, nil
	}
	if x, ok := scale.RatioByName(s); ok {
		return x, nil
	}
	return 0, &scale.ConfigError{Field: "Ratio", Reason: fmt.Sprintf("unknown ratio %q", s)}
}
