package cmd

import (
	"fmt"
	"io"

	"github.com/flint-ml/flint/tensor"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through tensor construction, arithmetic and display",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func runDemo(w io.Writer) error {
	fmt.Fprintln(w, "=== 1D Vector ===")
	v, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5}, tensor.Shape{5})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v)

	fmt.Fprintln(w, "\n=== 2D Matrix ===")
	m, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, m)

	fmt.Fprintln(w, "\n=== 3D Tensor ===")
	fmt.Fprintln(w, tensor.Zeros(tensor.Shape{2, 3, 4}))

	fmt.Fprintln(w, "\n=== Large Matrix (truncation) ===")
	fmt.Fprintln(w, tensor.Zeros(tensor.Shape{10, 10}))

	fmt.Fprintln(w, "\n=== Matrix Multiplication ===")
	b, err := tensor.FromSlice([]float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})
	if err != nil {
		return err
	}
	c, err := m.MatMul(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, c)

	fmt.Fprintln(w, "\n=== Element-wise Arithmetic ===")
	sum, err := m.Add(m)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, sum)
	fmt.Fprintln(w, m.MulScalar(0.5))
	fmt.Fprintln(w, m.Neg())

	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
