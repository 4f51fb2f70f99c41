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

	"github.com/notargets/shocktube/InputParameters"
	"github.com/notargets/shocktube/analytic"
	"github.com/notargets/shocktube/types"
	"github.com/notargets/shocktube/validation"
)

// ScoreCmd scores a single run and quantity without touching the record log
var ScoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the integrated error of one run and quantity",
	Long: `
shocktube score --run "TW LF" --quantity Sigma`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip   *InputParameters.ShockTubeParameters
			rec  validation.ErrorRecord
			name string
			qn   string
		)
		if ip, err = loadParameters(); err != nil {
			return
		}
		name, _ = cmd.Flags().GetString("run")
		qn, _ = cmd.Flags().GetString("quantity")
		if rec, err = ScoreOne(ip, name, qn); err != nil {
			return
		}
		fmt.Printf("%s\t(threshold %v)\n", rec, rec.Threshold)
		return
	},
}

func init() {
	rootCmd.AddCommand(ScoreCmd)
	ScoreCmd.Flags().StringP("run", "r", "", "run name from the case")
	ScoreCmd.Flags().StringP("quantity", "q", types.Sigma, "quantity to score")
	_ = ScoreCmd.MarkFlagRequired("run")
}

func ScoreOne(ip *InputParameters.ShockTubeParameters, runName, quantity string) (rec validation.ErrorRecord, err error) {
	var (
		c     validation.Case
		q     types.Quantity
		ref   *analytic.Reference
		run   types.RunConfig
		found bool
	)
	if c, err = buildCase(ip); err != nil {
		return
	}
	for _, rc := range c.Runs {
		if rc.Name == runName {
			run, found = rc, true
			break
		}
	}
	if !found {
		return rec, fmt.Errorf("no run named %q in case %q", runName, ip.Title)
	}
	if q, err = types.LookupQuantity(quantity); err != nil {
		return
	}
	if ref, err = loadReference(ip); err != nil {
		return
	}
	rec = validation.ErrorRecord{
		Run:       run.Name,
		Quantity:  q.Name,
		Threshold: c.Thresholds[q.Name],
	}
	if rec.Error, err = validation.NewScorer(ref, errorWindow(ip), logger).Score(run, q, c.Snapshot); err != nil {
		return
	}
	rec.Outcome = validation.Classify(rec.Error, rec.Threshold)
	return
}
