/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/notargets/shocktube/InputParameters"
)

var (
	cfgFile  string
	verbose  bool
	logger   = zap.NewNop()
	profiler interface{ Stop() }
	exitCode int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shocktube",
	Short: "Regression check of solver shock tube runs against the analytic solution",
	Long: `
Reads the snapshot output of each shock tube run, reduces every field to a radial profile,
integrates the absolute difference to the analytic solution and reports SUCCESS or FAIL.

shocktube check --outputRoot ../../output/tests/shocktube`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		switch mode := viper.GetString("profile"); mode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		default:
			return fmt.Errorf("unknown profile mode %q, use cpu or mem", mode)
		}
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and exits with the verdict's status
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shocktube.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	pf.String("profile", "", "write a cpu or mem profile to the working directory")
	pf.StringP("caseFile", "C", "", "YAML case file with runs, quantities and thresholds")
	pf.StringP("outputRoot", "o", "", "directory holding the run output directories")
	pf.StringP("analyticFile", "a", "", "analytic solution table")
	pf.IntP("snapshot", "s", -1, "snapshot index to check")
	pf.String("spline", "", "analytic interpolation: notaknot, akima, fritsch-butland, natural, linear")
	for _, name := range []string{"profile", "caseFile", "outputRoot", "analyticFile", "snapshot", "spline"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".shocktube")
	}
	viper.SetEnvPrefix("SHOCKTUBE")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadParameters starts from the reference case, overlays the case file and then any flag,
// environment or config file setting.
func loadParameters() (ip *InputParameters.ShockTubeParameters, err error) {
	ip = InputParameters.NewShockTubeParameters()
	if caseFile := viper.GetString("caseFile"); len(caseFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(caseFile); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing case file %s: %w", caseFile, err)
		}
	}
	if s := viper.GetString("outputRoot"); len(s) != 0 {
		ip.OutputRoot = s
	}
	if s := viper.GetString("analyticFile"); len(s) != 0 {
		ip.AnalyticFile = s
	}
	if s := viper.GetString("spline"); len(s) != 0 {
		ip.Spline = s
	}
	if n := viper.GetInt("snapshot"); n >= 0 {
		ip.Snapshot = n
	}
	if verbose {
		ip.Print()
	}
	return
}
