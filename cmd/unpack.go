package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/jsphweid/bmsdex/bemanilz"
	"github.com/jsphweid/bmsdex/constants"
	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var unpackGzip bool

func init() {
	unpackCmd.Flags().BoolVar(&unpackGzip, "gzip", false, "gzip the unpacked asset")
	rootCmd.AddCommand(unpackCmd)
}

var unpackCmd = &cobra.Command{
	Use:   "unpack <in> [out]",
	Short: "Decompresses a BemaniLZ asset",
	Long: `Decompresses a BemaniLZ asset. Without an output path the file is written next to
the input, named after the type sniffed from the decompressed bytes.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out string
		if len(args) == 2 {
			out = args[1]
		}
		return unpack(args[0], out, unpackGzip)
	},
}

// sniffExtension guesses an extension for a decompressed payload.
func sniffExtension(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return constants.UnknownAssetExtension
	}
	return "." + kind.Extension
}

func unpackedPath(in string, data []byte, gz bool) string {
	out := strings.TrimSuffix(in, filepath.Ext(in)) + sniffExtension(data)
	if out == in {
		out += constants.UnknownAssetExtension
	}
	if gz {
		out += ".gz"
	}
	return out
}

func writeAsset(path string, data []byte, gz bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer f.Close()

	if !gz {
		if _, err := f.Write(data); err != nil {
			return errors.Wrapf(err, "could not write %s", path)
		}
		return f.Close()
	}

	gzWriter := pgzip.NewWriter(f)
	if _, err := gzWriter.Write(data); err != nil {
		return errors.Wrapf(err, "could not compress %s", path)
	}
	if err := gzWriter.Close(); err != nil {
		return errors.Wrapf(err, "could not compress %s", path)
	}
	return f.Close()
}

func unpack(in string, out string, gz bool) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "could not read asset")
	}

	data, err := bemanilz.DecodeBytes(src)
	if err != nil {
		return errors.Wrapf(err, "could not decompress %s", in)
	}

	if out == "" {
		out = unpackedPath(in, data, gz)
	}
	if err := writeAsset(out, data, gz); err != nil {
		return err
	}

	log.Info().Str("in", in).Str("out", out).Int("compressed", len(src)).Int("bytes", len(data)).Msg("unpacked asset")
	return nil
}
