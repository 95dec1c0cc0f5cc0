// Command squlearn builds demonstration QCNN topologies and inspects
// the resulting circuit and observable artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/MHagelueken/squlearn/circuit"
	"github.com/MHagelueken/squlearn/internal/render"
	"github.com/MHagelueken/squlearn/pauli"
	"github.com/MHagelueken/squlearn/qcnn"
)

const version = "v0.1.0-dev"

var (
	flagQubits      int
	flagAlternating bool
	flagMeasurement bool

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9e64"))
)

var rootCmd = &cobra.Command{
	Use:   "squlearn",
	Short: "QCNN circuit-topology builder",
	Long: `squlearn builds Quantum Convolutional Neural Network circuit
topologies: alternating convolution and pooling layers over a qubit
register, with a measurement observable over the surviving qubits.`,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a QCNN and print its circuit, QASM, and observable",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, obs, err := buildDemo(flagQubits, flagAlternating, flagMeasurement)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Circuit"))
		fmt.Println(render.CircuitStyled(c))
		fmt.Println(titleStyle.Render("OpenQASM 2.0"))
		fmt.Println(c.ToQASM())
		fmt.Println(titleStyle.Render("Observable"))
		for paulis, weight := range obs.Map() {
			fmt.Printf("  %s  %g\n", paulis, weight)
		}
		fmt.Printf("\nqubits=%d features=%d parameters=%d\n",
			c.NumQubits(), c.NumFeatures(), c.NumParameters())
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Inspect a QCNN interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, obs, err := buildDemo(flagQubits, flagAlternating, flagMeasurement)
		if err != nil {
			return err
		}
		return runViewer(c, obs)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("squlearn %s\n", version)
	},
}

// buildDemo assembles the canonical demonstration model: angle-encoded
// features, then convolution and pooling repeated down to one active
// qubit, with the default observable on the survivor.
func buildDemo(qubits int, alternating, measurement bool) (*circuit.Circuit, *pauli.Observable, error) {
	b := qcnn.New(qubits)
	if err := b.Convolution(qcnn.ConvOptions{Alternating: alternating}); err != nil {
		return nil, nil, errors.Wrap(err, "convolution")
	}
	if err := b.Pooling(qcnn.PoolOptions{Measurement: measurement}); err != nil {
		return nil, nil, errors.Wrap(err, "pooling")
	}
	if err := b.RepeatLayers(); err != nil {
		return nil, nil, errors.Wrap(err, "repeat")
	}

	qc, err := b.Circuit()
	if err != nil {
		return nil, nil, errors.Wrap(err, "circuit")
	}
	enc := circuit.AngleEncoding(qubits, "rx")
	c, err := circuit.Compose(enc, qc)
	if err != nil {
		return nil, nil, errors.Wrap(err, "compose encoding")
	}
	obs, err := b.Observable()
	if err != nil {
		return nil, nil, errors.Wrap(err, "observable")
	}
	return c, obs, nil
}

func main() {
	for _, cmd := range []*cobra.Command{demoCmd, viewCmd} {
		cmd.Flags().IntVarP(&flagQubits, "qubits", "n", 4, "register size")
		cmd.Flags().BoolVar(&flagAlternating, "alternating", false, "alternating convolution adjacency")
		cmd.Flags().BoolVar(&flagMeasurement, "measurement", false, "measurement-based pooling")
	}
	rootCmd.AddCommand(demoCmd, viewCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
