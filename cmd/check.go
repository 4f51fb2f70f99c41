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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/shocktube/InputParameters"
	"github.com/notargets/shocktube/analytic"
	"github.com/notargets/shocktube/report"
	"github.com/notargets/shocktube/utils"
	"github.com/notargets/shocktube/validation"
)

// CheckCmd scores every run and quantity and prints the overall verdict
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Score all present runs against the analytic solution",
	Long: `
Scores each run whose output directory exists on every quantity, appends one line per pair to
the record log and prints a single SUCCESS / FAIL / NO DATA line. The exit status is 0 on
SUCCESS, 1 on FAIL and 2 when no run produced output.

shocktube check --plot --xlsx diffs.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip  *InputParameters.ShockTubeParameters
			rep *validation.Report
		)
		if ip, err = loadParameters(); err != nil {
			return
		}
		if s, _ := cmd.Flags().GetString("logFile"); len(s) != 0 {
			ip.LogFile = s
		}
		rep, err = RunCheck(ip, logger)
		if rep != nil {
			fmt.Println(rep.Verdict.Summary())
			exitCode = rep.Verdict.ExitCode()
		}
		if err != nil {
			return
		}
		// The verdict is final from here on, nothing below may change it
		if xlsx, _ := cmd.Flags().GetString("xlsx"); len(xlsx) != 0 {
			if werr := report.WriteWorkbook(xlsx, rep); werr != nil {
				logger.Warn("unable to write workbook", zap.String("file", xlsx), zap.Error(werr))
			}
		}
		if doPlot, _ := cmd.Flags().GetBool("plot"); doPlot {
			if perr := RunPlot(ip, ip.PlotFile, logger); perr != nil {
				logger.Warn("unable to render figure", zap.String("file", ip.PlotFile), zap.Error(perr))
			}
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	CheckCmd.Flags().StringP("logFile", "l", "", "record log, appended to (default diffs.log)")
	CheckCmd.Flags().String("xlsx", "", "also export the records and per quantity statistics to this workbook")
	CheckCmd.Flags().BoolP("plot", "p", false, "render the comparison figure after the verdict")
}

func loadReference(ip *InputParameters.ShockTubeParameters) (ref *analytic.Reference, err error) {
	var (
		scheme analytic.Scheme
	)
	if scheme, err = analytic.ParseScheme(ip.Spline); err != nil {
		return
	}
	return analytic.Load(ip.AnalyticFile, ip.Gamma, scheme)
}

// RunCheck scores the case described by ip, appending the records to ip.LogFile
func RunCheck(ip *InputParameters.ShockTubeParameters, logger *zap.Logger) (rep *validation.Report, err error) {
	var (
		c   validation.Case
		ref *analytic.Reference
		agg *validation.Aggregator
	)
	if c, err = buildCase(ip); err != nil {
		return
	}
	if ref, err = loadReference(ip); err != nil {
		return
	}
	f, err := validation.OpenRecordLog(ip.LogFile)
	if err != nil {
		return
	}
	defer f.Close()
	scorer := validation.NewScorer(ref, errorWindow(ip), logger)
	if agg, err = validation.NewAggregator(c, scorer, f, logger); err != nil {
		return
	}
	rep, err = agg.Run()
	logger.Debug("check finished", zap.String("memory", utils.GetMemUsage()))
	return
}
