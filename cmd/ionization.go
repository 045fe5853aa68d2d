package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/picongpu-tools/memcalc/ionization"
)

var (
	// CLI flags for memcalc ionization
	chargeState    float64 // charge state of the resulting ion
	ipEV           float64 // ionization potential in eV
	fieldMin       float64 // lowest field strength in V/m
	fieldMax       float64 // highest field strength in V/m
	sweepPoints    int     // number of sampled field strengths
	logScale       bool    // sample field strengths evenly in log10
	polarization   string  // laser polarization for ADK
	a0Value        float64 // normalized laser amplitude to convert
	intensityValue float64 // intensity in W/m^2 to convert
	wavelength     float64 // laser wavelength in m
)

var ionizationCmd = &cobra.Command{
	Use:   "ionization",
	Short: "Field ionization rates and laser unit conversions",
}

var adkCmd = &cobra.Command{
	Use:   "adk",
	Short: "Sample the ADK tunnelling rate over a range of field strengths",
	Run: func(cmd *cobra.Command, args []string) {
		pol, err := ionization.ParsePolarization(polarization)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		ip := ionization.ElectronVoltsToAU(ipEV)
		model, err := ionization.ADKModel(chargeState, ip, pol)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("ADK rate for Z=%g, Ip=%g eV, barrier suppression at %.4g V/m",
			chargeState, ipEV, ionization.BarrierSuppressionField(chargeState, ip)*ionization.AU.ElectricField)
		if err := printSweep(cmd.OutOrStdout(), model); err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
	},
}

var keldyshCmd = &cobra.Command{
	Use:   "keldysh",
	Short: "Sample the Keldysh tunnelling rate over a range of field strengths",
	Run: func(cmd *cobra.Command, args []string) {
		model := ionization.KeldyshModel(ionization.ElectronVoltsToAU(ipEV))
		if err := printSweep(cmd.OutOrStdout(), model); err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between normalized laser amplitude a0 and intensity",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printConversion(cmd.OutOrStdout(), cmd.Flags().Changed("a0"), cmd.Flags().Changed("intensity")); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// printSweep samples model between the field flags (V/m) and prints rates in 1/s.
func printSweep(w io.Writer, model ionization.RateModel) error {
	points, err := ionization.Sweep(model,
		ionization.FieldToAU(fieldMin), ionization.FieldToAU(fieldMax), sweepPoints, logScale)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-14s %-14s %-14s\n", "field[V/m]", "field[AU]", "rate[1/s]")
	for _, p := range points {
		fmt.Fprintf(w, "%-14.6e %-14.6e %-14.6e\n",
			p.Field*ionization.AU.ElectricField, p.Field, ionization.RateToSI(p.Rate))
	}
	return nil
}

func printConversion(w io.Writer, haveA0, haveIntensity bool) error {
	if haveA0 == haveIntensity {
		return fmt.Errorf("exactly one of --a0 or --intensity is required")
	}
	if haveA0 {
		fmt.Fprintf(w, "intensity: %.6e W/m^2\n", ionization.A0ToIntensity(a0Value, wavelength))
		return nil
	}
	fmt.Fprintf(w, "a0: %.6g\n", ionization.IntensityToA0(intensityValue, wavelength))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{adkCmd, keldyshCmd} {
		c.Flags().Float64Var(&ipEV, "ip", 13.6, "Ionization potential in eV")
		c.Flags().Float64Var(&fieldMin, "field-min", 1e10, "Lowest field strength in V/m")
		c.Flags().Float64Var(&fieldMax, "field-max", 1e12, "Highest field strength in V/m")
		c.Flags().IntVar(&sweepPoints, "points", 21, "Number of sampled field strengths")
		c.Flags().BoolVar(&logScale, "log-scale", false, "Sample field strengths evenly in log10")
	}
	adkCmd.Flags().Float64Var(&chargeState, "charge", 1, "Charge state of the resulting ion")
	adkCmd.Flags().StringVar(&polarization, "polarization", string(ionization.Linear), "Laser polarization (linear, circular)")

	convertCmd.Flags().Float64Var(&a0Value, "a0", 0, "Normalized laser amplitude")
	convertCmd.Flags().Float64Var(&intensityValue, "intensity", 0, "Intensity in W/m^2")
	convertCmd.Flags().Float64Var(&wavelength, "wavelength", ionization.DefaultWavelength, "Laser wavelength in m")

	ionizationCmd.AddCommand(adkCmd)
	ionizationCmd.AddCommand(keldyshCmd)
	ionizationCmd.AddCommand(convertCmd)
}
