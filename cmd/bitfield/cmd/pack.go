package cmd

import (
	"fmt"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	"github.com/wirekit/bitcursor"
	"github.com/wirekit/bitcursor/config"
	"github.com/wirekit/bitcursor/shared"
)

var packCmd = &cobra.Command{
	Use:   "pack [values...]",
	Short: "Encode field values into packed bytes",
	Long: `Encode one value per layout field into packed bytes. Values are given as
decimal, or hex/binary with the usual 0x/0b prefixes. The result is printed
as hex, or written to --out as raw bytes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		widths, err := config.ParseLayout(cfg.Layout)
		if err != nil {
			return err
		}

		values := make([]byte, 0, len(args))
		for _, arg := range args {
			v, err := strconv.ParseUint(arg, 0, 8)
			if err != nil {
				return fmt.Errorf("invalid field value %q: %w", arg, err)
			}
			values = append(values, byte(v))
		}

		codec := bitcursor.NewCodec()
		codec.SetLogger(zapAdapter{logger})
		buf, err := codec.Pack(widths, values)
		if err != nil {
			return err
		}

		if cfg.Out != "" {
			if err := os.WriteFile(cfg.Out, buf.Bytes(), shared.OwnerReadWrite); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			logger.Infof("wrote %s to %s", bytefmt.ByteSize(uint64(buf.Len())), cfg.Out)
			return nil
		}

		fmt.Println(shared.HexString(buf.Bytes()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVar(&cfg.Out, "out", cfg.Out, "output file path (hex to stdout if omitted)")
}
