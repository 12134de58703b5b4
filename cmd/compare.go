/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/notargets/gobdf/bdf/model"
	"github.com/notargets/gobdf/bdf/reader"
	"github.com/notargets/gobdf/bdf/writer"
)

// CompareCmd represents the compare command
var CompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Write a deck, read it back and compare the card counts",
	Long: `Write the deck read from -F in the requested format, read the result back and
compare the card counts per type. The written deck is kept when -o is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := writeParameters(cmd.Flags())
		if err != nil {
			return err
		}
		opts, err := ip.WriterOptions()
		if err != nil {
			return err
		}
		m, err := readDeck(cmd.Flags(), ip.Encoding)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := writer.Write(m, &buf, opts); err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := writeModel(m, out, ip); err != nil {
				return err
			}
		}
		back, err := reader.Read(&buf, reader.Options{})
		if err != nil {
			return fmt.Errorf("reading the written deck: %w", err)
		}
		diffs := model.CompareCounts(m.CardCount(), back.CardCount())
		for _, d := range diffs {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		if len(diffs) > 0 {
			return fmt.Errorf("%d card types differ after the round trip", len(diffs))
		}
		slog.Info("card counts match", "card types", len(m.CardCount()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(CompareCmd)
	addWriteFlags(CompareCmd.Flags(), "deck file to read")
}
