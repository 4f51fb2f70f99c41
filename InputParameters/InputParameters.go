package InputParameters

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/shocktube/types"
)

// Parameters obtained from the YAML case file
type ShockTubeParameters struct {
	Title        string
	OutputRoot   string // Relative run OutputDirs are joined to this
	Runs         []types.RunConfig
	Quantities   []string
	Thresholds   map[string]float64
	Snapshot     int
	Window       [2]float64
	AnalyticFile string
	Gamma        float64
	Spline       string
	LogFile      string
	PlotFile     string
}

const DefaultOutputRoot = "../../output/tests/shocktube"

// NewShockTubeParameters returns the reference test matrix: four solver configurations
// checked on snapshot 1 over r in [0,1].
func NewShockTubeParameters() (ip *ShockTubeParameters) {
	ip = &ShockTubeParameters{
		Title:      "Shock Tube",
		OutputRoot: DefaultOutputRoot,
		Runs: []types.RunConfig{
			{Name: "SN", OutputDir: "SN", Color: "red", LineStyle: "--"},
			{Name: "TW", OutputDir: "TW", Color: "blue", LineStyle: "--"},
			{Name: "TW LF", OutputDir: "TW_LF", Color: "green", LineStyle: "-."},
			{Name: "SN LF", OutputDir: "SN_LF", Color: "orange", LineStyle: ":"},
		},
		Quantities: []string{types.Vrad, types.Sigma, types.Temperature, types.Energy},
		Thresholds: map[string]float64{
			types.Vrad:        0.0153,
			types.Sigma:       0.0073,
			types.Temperature: 0.016,
			types.Energy:      0.014,
		},
		Snapshot:     1,
		Window:       [2]float64{0, 1},
		AnalyticFile: "analytic_shock.dat",
		Gamma:        1.4,
		Spline:       "notaknot",
		LogFile:      "diffs.log",
		PlotFile:     "plot.jpg",
	}
	return
}

// Parse overlays the YAML in data onto the current values, so unset keys keep their defaults
func (ip *ShockTubeParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// RunConfigs resolves run output directories against OutputRoot
func (ip *ShockTubeParameters) RunConfigs() (runs []types.RunConfig) {
	runs = make([]types.RunConfig, len(ip.Runs))
	for i, run := range ip.Runs {
		runs[i] = run
		if !filepath.IsAbs(run.OutputDir) && len(ip.OutputRoot) != 0 {
			runs[i].OutputDir = filepath.Join(ip.OutputRoot, run.OutputDir)
		}
	}
	return
}

func (ip *ShockTubeParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t= Output Root\n", ip.OutputRoot)
	fmt.Printf("[%d]\t\t\t\t= Snapshot\n", ip.Snapshot)
	fmt.Printf("[%5.3f, %5.3f]\t\t= Error Window\n", ip.Window[0], ip.Window[1])
	fmt.Printf("[%s]\t= Analytic File\n", ip.AnalyticFile)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%s]\t\t= Spline\n", ip.Spline)
	for _, run := range ip.Runs {
		fmt.Printf("Run[%s] = %s\n", run.Name, run.OutputDir)
	}
	keys := make([]string, len(ip.Thresholds))
	i := 0
	for k := range ip.Thresholds {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Threshold[%s] = %v\n", key, ip.Thresholds[key])
	}
}
