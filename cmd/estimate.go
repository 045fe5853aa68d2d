package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/picongpu-tools/memcalc/memory"
)

var (
	// CLI flags for memcalc estimate
	scenarioPath string // YAML or INI scenario file
	deviceName   string // device to check the estimate against (optional)
	devicesPath  string // device catalog
	outputFormat string // table or yaml
)

// estimateReport is the YAML form of an estimate.
type estimateReport struct {
	Breakdown *memory.Breakdown `yaml:"breakdown"`
	Total     int64             `yaml:"total"`
	Device    *deviceFit        `yaml:"device,omitempty"`
}

type deviceFit struct {
	Name     string `yaml:"name"`
	Usable   int64  `yaml:"usable"`
	Headroom int64  `yaml:"headroom"`
	Fits     bool   `yaml:"fits"`
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the memory one device needs for a scenario",
	Long: "Estimate the memory one device needs for the fields, super cell state, particles, RNG state and " +
		"calorimeters described by a scenario file (.yaml, or .ini/.cfg). With --device the total is " +
		"compared against the usable memory of a device from the catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("Scenario file not provided. Use --config.")
		}
		if err := runEstimate(cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Estimate failed: %v", err)
		}
	},
}

func runEstimate(w io.Writer) error {
	s, err := memory.LoadScenarioFile(scenarioPath)
	if err != nil {
		return err
	}
	b, err := memory.Estimate(s)
	if err != nil {
		return err
	}
	total, err := b.Total()
	if err != nil {
		return err
	}
	logrus.Infof("Estimated %s (%d bytes) per device for %s", memory.FormatBytes(total), total, scenarioPath)

	report := estimateReport{Breakdown: b, Total: total}
	if deviceName != "" {
		if devicesPath == "" {
			return fmt.Errorf("--devices is required with --device")
		}
		catalog, err := memory.LoadDeviceCatalog(devicesPath)
		if err != nil {
			return err
		}
		d, err := catalog.GetDevice(deviceName)
		if err != nil {
			return err
		}
		headroom := d.Headroom(total)
		report.Device = &deviceFit{Name: deviceName, Usable: d.Usable(), Headroom: headroom, Fits: headroom >= 0}
		if headroom < 0 {
			logrus.Warnf("Estimate exceeds usable memory of %s by %s", deviceName, memory.FormatBytes(-headroom))
		}
	}

	switch outputFormat {
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("YAML marshal failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "table":
		if err := b.Print(w); err != nil {
			return err
		}
		if fit := report.Device; fit != nil {
			fmt.Fprintf(w, "%-28s: %12s\n", "usable on "+fit.Name, memory.FormatBytes(fit.Usable))
			fmt.Fprintf(w, "%-28s: %12s\n", "headroom", memory.FormatBytes(fit.Headroom))
			fmt.Fprintf(w, "%-28s: %12v\n", "fits", fit.Fits)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q; valid: table, yaml", outputFormat)
	}
}

func init() {
	estimateCmd.Flags().StringVar(&scenarioPath, "config", "", "Scenario file (.yaml, .ini or .cfg)")
	estimateCmd.Flags().StringVar(&deviceName, "device", "", "Device from the catalog to check the estimate against")
	estimateCmd.Flags().StringVar(&devicesPath, "devices", "", "Device catalog YAML, required with --device (e.g. testdata/devices.yaml)")
	estimateCmd.Flags().StringVar(&outputFormat, "output", "table", "Output format (table, yaml)")
}
