package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/LayorX/video-ratio-tool/pkg/videoconverter"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "video-ratio-tool",
		Short: "Batch-convert videos in a folder to a target aspect ratio",
		Long: `video-ratio-tool converts every video in a folder to a target aspect
ratio, either by cropping the frame or by letterboxing it onto a black
canvas, and writes the results to an output folder.

Examples:
  # Crop everything in ./work_place to 9:16 (the defaults)
  video-ratio-tool convert

  # Letterbox a folder of clips to 1:1
  video-ratio-tool convert -i ./clips -o ./square -r 1:1 -m letterbox

  # Use a named preset
  video-ratio-tool convert -i ./clips -o ./out --preset shorts`,
	}

	convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert a folder of videos to a target aspect ratio",
		Long: fmt.Sprintf(`Convert every .mp4, .mov and .avi file in the input folder to the
target aspect ratio and write the results to the output folder.

Supported methods: %s

Supported presets:
%s`,
			strings.Join(videoconverter.GetSupportedMethods(), ", "),
			formatSupportedPresets()),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &videoconverter.ConvertOptions{}

			opts.InputDir, _ = cmd.Flags().GetString("input")
			opts.OutputDir, _ = cmd.Flags().GetString("output")
			opts.TargetRatio, _ = cmd.Flags().GetString("ratio")
			opts.Method, _ = cmd.Flags().GetString("method")
			opts.OutputSuffix, _ = cmd.Flags().GetString("suffix")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")

			// A preset supplies ratio and method unless either was
			// given explicitly
			presetName, _ := cmd.Flags().GetString("preset")
			if presetName != "" {
				ratio, method, err := videoconverter.ResolvePreset(presetName)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("ratio") {
					opts.TargetRatio = ratio
				}
				if !cmd.Flags().Changed("method") {
					opts.Method = method
				}
			}

			summary, err := videoconverter.ConvertFolder(opts)
			if err != nil {
				return err
			}

			fmt.Printf("Done: %d converted, %d failed\n", summary.Converted, summary.Failed)
			return nil
		},
	}
)

func formatSupportedPresets() string {
	var sb strings.Builder
	for _, p := range videoconverter.GetSupportedPresets() {
		sb.WriteString(fmt.Sprintf("- %s: %s %s (%s)\n", p.Name, p.Ratio, p.Method, p.Description))
	}
	return sb.String()
}

func init() {
	convertCmd.Flags().StringP("input", "i", videoconverter.DefaultInputDir, "Input folder of videos")
	convertCmd.Flags().StringP("output", "o", videoconverter.DefaultOutputDir, "Output folder for converted videos")
	convertCmd.Flags().StringP("ratio", "r", videoconverter.DefaultTargetRatio, "Target aspect ratio, e.g. '1:1' or '9:16'")
	convertCmd.Flags().StringP("method", "m", videoconverter.DefaultMethod,
		fmt.Sprintf("Conversion method (%s)", strings.Join(videoconverter.GetSupportedMethods(), ", ")))
	convertCmd.Flags().StringP("preset", "p", "", "Named ratio+method preset (see help)")
	convertCmd.Flags().StringP("suffix", "s", videoconverter.DefaultOutputSuffix, "Suffix appended to converted file names")
	convertCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(convertCmd)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
