package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"

	"github.com/ddirect/kontainer/bounded"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	floats  []float64
	strings []string
	verbose bool
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.Float64SliceVar(&o.floats, "floats", []float64{1, 2, 3}, "values added to the float container")
	fs.StringSliceVar(&o.strings, "strings", []string{"cat", "dog", "elephant"}, "values added to the string container")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "kontainer",
		Short: "Print the minimum of a float and a string bounded container",
		Long: fmt.Sprintf("Fills one float and one string container, each holding at most %d "+
			"elements, and prints the minimum of each on its own line.", bounded.Capacity),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if o.verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if err := printMin(cmd.OutOrStdout(), log, "floats", o.floats); err != nil {
				log.Error("float container", "err", err)
				return err
			}
			if err := printMin(cmd.OutOrStdout(), log, "strings", o.strings); err != nil {
				log.Error("string container", "err", err)
				return err
			}
			return nil
		},
	}
	o.register(cmd.Flags())
	return cmd
}

func printMin[T cmp.Ordered](w io.Writer, log *slog.Logger, name string, values []T) error {
	c := bounded.NewOrdered[T]()
	dropped := 0
	for _, v := range values {
		if !c.Add(v) {
			dropped++
		}
	}
	if dropped > 0 {
		log.Debug("container full", "container", name, "dropped", dropped)
	}

	m, err := c.Min()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	_, err = fmt.Fprintln(w, m)
	return err
}
