// posetrack inspects the camera path of the default section layout.
//
//	posetrack sample   - print the pose at evenly spaced scroll offsets
//	posetrack simulate - replay a forced jump frame by frame
//	posetrack plot     - render the position curves to a WebP image
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
	"github.com/Carmen-Shannon/oxy-scroll/internal/config"
	"github.com/Carmen-Shannon/oxy-scroll/internal/track"
)

var (
	steps   int
	workers int
	fps     float32
	from    int
	to      int
	output  string
	width   int
	height  int
)

func main() {
	cmd := &cobra.Command{
		Use:   "posetrack",
		Short: "Inspect the scroll camera path",
		Long: `posetrack - inspect the scroll camera path

Samples the section table along the whole scroll range, replays jumps between sections with the
navigator tunables read from OXY_SCROLL_* variables, and plots the camera position curves.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().IntVar(&workers, "workers", runtime.NumCPU(), "Sampling workers")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Print poses at evenly spaced offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd)
		},
	}
	sampleCmd.Flags().IntVar(&steps, "steps", 100, "Number of intervals between offset 0 and 1")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a jump between two sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd)
		},
	}
	simulateCmd.Flags().IntVar(&from, "from", 0, "Start section")
	simulateCmd.Flags().IntVar(&to, "to", 13, "Requested section")
	simulateCmd.Flags().Float32Var(&fps, "fps", 60, "Replay frame rate")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the position curves to a WebP image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot()
		},
	}
	plotCmd.Flags().StringVarP(&output, "out", "o", "posetrack.webp", "Output file")
	plotCmd.Flags().IntVar(&width, "width", 1200, "Image width")
	plotCmd.Flags().IntVar(&height, "height", 400, "Image height")
	plotCmd.Flags().IntVar(&steps, "steps", 2000, "Number of intervals between offset 0 and 1")

	cmd.AddCommand(sampleCmd, simulateCmd, plotCmd)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSample(cmd *cobra.Command) error {
	table := section.DefaultTable()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "offset\tsection\tpose")
	for _, s := range track.SampleTable(table, steps, workers) {
		fmt.Fprintf(out, "%.4f\t%d\t%s\n", s.Offset, s.Section, s.Pose)
	}
	return nil
}

func runSimulate(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if fps <= 0 {
		fps = 60
	}
	table := section.DefaultTable()
	frames, err := track.Simulate(table, track.Simulation{
		From:    from,
		To:      to,
		FPS:     fps,
		Options: cfg.NavigatorOptions(nil),
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "frame\tmode\tsection\toffset\tpose")
	for _, f := range frames {
		fmt.Fprintf(out, "%d\t%s\t%d\t%.4f\t%s\n", f.Frame, f.Mode, f.Section, f.Offset, f.Pose)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "completed in %d frames (%.2fs)\n", len(frames), float32(len(frames))/fps)
	return nil
}

func runPlot() error {
	table := section.DefaultTable()
	img := track.Plot(table, track.SampleTable(table, steps, workers), width, height)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := track.EncodeWebP(f, img); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", output, width, height)
	return nil
}
