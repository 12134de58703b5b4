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
	"github.com/spf13/cobra"
)

// StatsCmd represents the stats command
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the card counts and node bounds of a bulk data deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		encoding, _ := cmd.Flags().GetString("encoding")
		m, err := readDeck(cmd.Flags(), encoding)
		if err != nil {
			return err
		}
		m.Stats().Print(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(StatsCmd)
	StatsCmd.Flags().StringP("file", "F", "", "deck file to read")
	StatsCmd.Flags().String("encoding", "", "IANA name of the deck encoding")
}
