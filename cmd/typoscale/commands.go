package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/npillmayer/typoscale/config"
	"github.com/npillmayer/typoscale/css"
	"github.com/npillmayer/typoscale/preview"
	"github.com/npillmayer/typoscale/scale"
	"github.com/npillmayer/typoscale/stylesheet"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	baseStyle   = cellStyle.Foreground(lipgloss.Color("69"))
)

func newCSSCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the stylesheet of a scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := opts.generate(cmd)
			if err != nil {
				return err
			}
			return opts.write(cmd, output, "stylesheet", func(w io.Writer) error {
				_, err := io.WriteString(w, stylesheet.Serialize(s, cfg))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newStepsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "Print the steps of a scale as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := opts.generate(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stepsTable(s.Steps, cfg))
			if s.HasMobile() {
				fmt.Fprintf(cmd.OutOrStdout(), "\nmobile, up to %spx:\n", css.Compact(s.Breakpoint))
				fmt.Fprintln(cmd.OutOrStdout(), stepsTable(s.Mobile, cfg))
			}
			return nil
		},
	}
}

func stepsTable(steps []scale.Step, cfg scale.Config) string {
	prefix := cfg.VarPrefix()
	rows := make([][]string, 0, len(steps))
	for i := len(steps) - 1; i >= 0; i-- {
		st := steps[i]
		var elements []string
		for _, a := range cfg.Elements {
			if a.Step == st.Index {
				elements = append(elements, stylesheet.Selector(a.Element))
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(st.Index),
			stylesheet.PropertyName(prefix, st.Index),
			css.Format(st.Size, css.PxPrecision),
			st.Expr,
			st.LineHeight,
			strings.Join(elements, " "),
		})
	}
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("step", "property", "px", "size", "line height", "elements").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && rows[row][0] == "0" {
				return baseStyle
			}
			return cellStyle
		})
	return tbl.String()
}

func newPreviewCmd(opts *options) *cobra.Command {
	var output, text string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render an HTML preview of a scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := opts.generate(cmd)
			if err != nil {
				return err
			}
			doc := preview.Document(s, cfg, text)
			return opts.write(cmd, output, "preview", func(w io.Writer) error {
				return preview.Render(w, doc)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&text, "text", preview.DefaultText, "sample text")
	return cmd
}

func newOutlineCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "outline",
		Short: "Print a scale as a tree of steps and elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := opts.generate(cmd)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), preview.Outline(s, cfg))
			return err
		},
	}
}

func newDotCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print a scale as a GraphViz diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := opts.generate(cmd)
			if err != nil {
				return err
			}
			return opts.write(cmd, output, "diagram", func(w io.Writer) error {
				return preview.ToGraphViz(s, cfg, w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newRatiosCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ratios",
		Short: "List the named ratios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, len(scale.Ratios))
			for i, r := range scale.Ratios {
				rows[i] = []string{r.Key(), css.Compact(r.Value), r.Name}
			}
			tbl := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("key", "ratio", "name").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
			return nil
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.configuration(cmd)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// write sends output to a file, if a path is given, or to the command's
// output stream.
func (opts *options) write(cmd *cobra.Command, path, what string, render func(io.Writer) error) error {
	if path == "" {
		return render(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	opts.logger.Info("wrote "+what, "path", path)
	return nil
}
