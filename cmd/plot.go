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
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/shocktube/InputParameters"
	"github.com/notargets/shocktube/analytic"
	"github.com/notargets/shocktube/validation"
	"github.com/notargets/shocktube/visualize"
)

// PlotCmd renders the analytic curves and all present run profiles, one panel per quantity
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the run profiles against the analytic solution",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.ShockTubeParameters
		)
		if ip, err = loadParameters(); err != nil {
			return
		}
		out, _ := cmd.Flags().GetString("out")
		if len(out) == 0 {
			out = ip.PlotFile
		}
		return RunPlot(ip, out, logger)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().String("out", "", "image file, .png or .jpg (default plot.jpg)")
}

func RunPlot(ip *InputParameters.ShockTubeParameters, filename string, logger *zap.Logger) (err error) {
	var (
		c      validation.Case
		ref    *analytic.Reference
		panels []visualize.Panel
	)
	if c, err = buildCase(ip); err != nil {
		return
	}
	if ref, err = loadReference(ip); err != nil {
		return
	}
	if panels, err = visualize.Collect(ref, c.Runs, c.Quantities, c.Snapshot, logger); err != nil {
		return
	}
	return visualize.Render(filename, panels)
}
