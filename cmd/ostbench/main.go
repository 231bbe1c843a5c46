// Command ostbench stress tests the order-statistic trees against a sorted slice.
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	"github.com/sephirothx/dstruct/internal/bench"
	"github.com/sephirothx/dstruct/internal/flogging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var logger = flogging.MustGetLogger("ostbench")

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:           "ostbench",
		Short:         "Stress test the order-statistic trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			flogging.InitFromSpec(v.GetString("log_level"))
			return nil
		},
	}
	f := root.PersistentFlags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file path")
	f.String("log-level", "info", "logging spec, such as debug or bench=debug:info")
	bindFlag(v, "log_level", f.Lookup("log-level"))

	root.AddCommand(newRunCmd(v), newScenariosCmd())
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	bench.SetDefaults(v)
	v.SetEnvPrefix("OSTBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	return errors.Wrapf(v.ReadInConfig(), "reading %s", cfgFile)
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a random workload against one tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := bench.Load(v)
			if err != nil {
				return err
			}
			logger.Infof("running %d operations on %s, keys in [0, %d), seed %d", c.Ops, c.Tree, c.KeyRange, c.Seed)
			r := metrics.NewRegistry()
			_, err = bench.Run(c, r)
			bench.Summarize(r)
			return errors.Wrapf(err, "%s run failed", c.Tree)
		},
	}
	f := cmd.Flags()
	f.StringP("tree", "t", "rb", "tree to run: avl, rb or bst")
	f.IntP("ops", "n", 100000, "number of operations")
	f.Int("key-range", 1000, "keys are drawn from [0, key-range)")
	f.Int64("seed", 1, "random seed")
	f.Int("audit-every", 1000, "audit after this many insertions and removals, 0 for only at the end")
	bindFlag(v, "tree", f.Lookup("tree"))
	bindFlag(v, "ops", f.Lookup("ops"))
	bindFlag(v, "key_range", f.Lookup("key-range"))
	bindFlag(v, "seed", f.Lookup("seed"))
	bindFlag(v, "audit_every", f.Lookup("audit-every"))
	return cmd
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios [tree...]",
		Short: "Replay the fixed scenarios against the given trees, or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = bench.Engines
			}
			failed, err := bench.RunScenarios(args)
			if err != nil {
				return err
			}
			if failed > 0 {
				return errors.Errorf("%d scenarios failed", failed)
			}
			return nil
		},
	}
}

// bindFlag panics since a failure means the flag doesn't exist.
func bindFlag(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
