package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rickhohler/gzipkit/internal/gzcodec"
	"github.com/rickhohler/gzipkit/internal/infrastructure/logger"
	"github.com/spf13/cobra"
)

type DecompressFlags struct {
	logLevel         int
	outputPath       string
	skipTrailerCheck bool
}

var decompressFlags DecompressFlags

func init() {
	fs := decompressCmd.Flags()

	fs.IntVar(&decompressFlags.logLevel, "log-level", int(logger.LevelInfo), "Log level, info=4, debug=5")
	fs.StringVar(&decompressFlags.outputPath, "output", "", "Path to write the decompressed data to (defaults to <input> without its .gz suffix)")
	fs.BoolVar(&decompressFlags.skipTrailerCheck, "skip-trailer-check", false, "Don't verify the stream's CRC-32/length trailer against the output")
}

var decompressCmd = &cobra.Command{
	Use:   "decompress <input.gz>",
	Short: "Decompress a gzip file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		flags := decompressFlags
		log := logger.NewWithLevel(ctx, logger.LogLevel(flags.logLevel))

		inputPath := args[0]
		outputPath := flags.outputPath
		if outputPath == "" {
			if !strings.HasSuffix(inputPath, ".gz") {
				return fmt.Errorf("'%s' has no .gz suffix, use --output", inputPath)
			}
			outputPath = strings.TrimSuffix(inputPath, ".gz")
		}

		stream, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading '%s': %w", inputPath, err)
		}

		codec := gzcodec.New(log, gzcodec.WithTrailerCheck(!flags.skipTrailerCheck))
		data, err := codec.Decompress(stream)
		if err != nil {
			return fmt.Errorf("decompressing '%s': %w", inputPath, err)
		}

		err = os.WriteFile(outputPath, data, 0o644)
		if err != nil {
			return fmt.Errorf("writing '%s': %w", outputPath, err)
		}

		log.Infof("decompressed '%s' (%d bytes) to '%s' (%d bytes)", inputPath, len(stream), outputPath, len(data))
		return nil
	},
}
