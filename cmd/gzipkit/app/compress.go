package app

import (
	"context"
	"fmt"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/rickhohler/gzipkit/internal/gzcodec"
	"github.com/rickhohler/gzipkit/internal/infrastructure/logger"
	"github.com/spf13/cobra"
)

type CompressFlags struct {
	logLevel   int
	outputPath string
	level      int
}

var compressFlags CompressFlags

func init() {
	fs := compressCmd.Flags()

	fs.IntVar(&compressFlags.logLevel, "log-level", int(logger.LevelInfo), "Log level, info=4, debug=5")
	fs.StringVar(&compressFlags.outputPath, "output", "", "Path to write the gzip stream to (defaults to <input>.gz)")
	fs.IntVar(&compressFlags.level, "level", flate.DefaultCompression, "Compression level, -2 (huffman only) to 9 (best compression)")
}

var compressCmd = &cobra.Command{
	Use:   "compress <input>",
	Short: "Compress a file to gzip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		flags := compressFlags
		log := logger.NewWithLevel(ctx, logger.LogLevel(flags.logLevel))

		if flags.level < flate.HuffmanOnly || flags.level > flate.BestCompression {
			return fmt.Errorf("compression level %d outside valid range [%d; %d]", flags.level, flate.HuffmanOnly, flate.BestCompression)
		}

		inputPath := args[0]
		outputPath := flags.outputPath
		if outputPath == "" {
			outputPath = inputPath + ".gz"
		}

		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading '%s': %w", inputPath, err)
		}

		codec := gzcodec.New(log, gzcodec.WithPrimitive(gzcodec.Flate{Level: flags.level}))
		stream, err := codec.Compress(data)
		if err != nil {
			return fmt.Errorf("compressing '%s': %w", inputPath, err)
		}

		err = os.WriteFile(outputPath, stream, 0o644)
		if err != nil {
			return fmt.Errorf("writing '%s': %w", outputPath, err)
		}

		log.Infof("compressed '%s' (%d bytes) to '%s' (%d bytes)", inputPath, len(data), outputPath, len(stream))
		return nil
	},
}
