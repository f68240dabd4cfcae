package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wirekit/bitcursor"
	"github.com/wirekit/bitcursor/buffer"
	"github.com/wirekit/bitcursor/config"
	"github.com/wirekit/bitcursor/shared"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack",
	Short: "Decode sub-byte fields from raw bytes",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := inputBytes()
		if err != nil {
			return err
		}
		logger.Infof("unpacking %s (%s)", shared.HexString(data), bytefmt.ByteSize(uint64(len(data))))

		widths, err := config.ParseLayout(cfg.Layout)
		if err != nil {
			return err
		}

		codec := bitcursor.NewCodec()
		codec.SetLogger(zapAdapter{logger})
		fields, err := codec.Unpack(buffer.NewSliceBuffer(data), widths)
		if err != nil {
			return err
		}

		report(fields)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)

	unpackCmd.Flags().StringVar(&cfg.In, "in", cfg.In, "input file path")
	unpackCmd.Flags().StringVar(&cfg.Hex, "hex", cfg.Hex, "input bytes as a hex string")
}

func inputBytes() ([]byte, error) {
	switch {
	case cfg.Hex != "":
		data, err := hex.DecodeString(cfg.Hex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	case cfg.In != "":
		data, err := os.ReadFile(cfg.In)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	default:
		return nil, errors.New("either --in or --hex is required")
	}
}

func report(fields []bitcursor.Field) {
	data := make([][]string, 0, len(fields))
	for i, f := range fields {
		data = append(data, []string{
			strconv.Itoa(i),
			strconv.Itoa(int(f.Width)),
			strconv.Itoa(int(f.Value)),
			fmt.Sprintf("0x%02x", f.Value),
			fmt.Sprintf("%0*b", int(f.Width), f.Value),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"field", "width", "value", "hex", "binary"})
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}
