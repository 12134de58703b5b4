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
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/notargets/gobdf/InputParameters"
	"github.com/notargets/gobdf/bdf/model"
	"github.com/notargets/gobdf/bdf/reader"
	"github.com/notargets/gobdf/bdf/writer"
)

const exampleParameters = `
########################################
Title: "Test Case"
FieldSize: small    # or large
Precision: single   # or double, large field only
Interspersed: true  # properties written after their elements
EndData: true       # omit to follow the input deck
Encoding: utf-8
########################################
`

// WriteCmd represents the write command
var WriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Read a bulk data deck and write it back out",
	Long: `Read a bulk data deck (-F) and write it back out (-o) in the requested field format.
Parameters come from a YAML file (-I) and may be overridden by flags. Example file:` + exampleParameters,
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := writeParameters(cmd.Flags())
		if err != nil {
			return err
		}
		m, err := readDeck(cmd.Flags(), ip.Encoding)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		return writeModel(m, out, ip)
	},
}

func init() {
	rootCmd.AddCommand(WriteCmd)
	addWriteFlags(WriteCmd.Flags(), "deck file to read")
}

func addWriteFlags(flags *pflag.FlagSet, fileUsage string) {
	flags.StringP("file", "F", "", fileUsage)
	flags.StringP("output", "o", "", "deck file to write")
	flags.StringP("inputParametersFile", "I", "", "YAML file for write parameters like:\n\t- FieldSize\n\t- Precision")
	flags.String("size", "", "field size: 8 (small) or 16 (large)")
	flags.Bool("double", false, "double precision floats, large field only")
	flags.Bool("separate", false, "write elements and properties as separate sections")
	flags.String("enddata", "", "true or false forces ENDDATA, unset follows the input")
	flags.String("encoding", "", "IANA name of the deck encoding")
	flags.BoolP("verbose", "v", false, "print the write parameters")
}

func readDeck(flags *pflag.FlagSet, encoding string) (*model.Model, error) {
	file, _ := flags.GetString("file")
	if file == "" {
		return nil, fmt.Errorf("must supply a deck file (-F, --file)")
	}
	return reader.ReadFile(file, reader.Options{Encoding: encoding})
}

// writeParameters reads the parameter file, if any, and lays the flags that
// were set over it.
func writeParameters(flags *pflag.FlagSet) (*InputParameters.WriteParameters, error) {
	ip := InputParameters.NewWriteParameters()
	if file, _ := flags.GetString("inputParametersFile"); file != "" {
		var err error
		if ip, err = InputParameters.ReadFile(file); err != nil {
			return nil, err
		}
	}
	if flags.Changed("size") {
		ip.FieldSize, _ = flags.GetString("size")
	}
	if double, _ := flags.GetBool("double"); double {
		ip.Precision = "double"
	}
	if separate, _ := flags.GetBool("separate"); separate {
		ip.Interspersed = false
	}
	if flags.Changed("enddata") {
		s, _ := flags.GetString("enddata")
		endData, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("--enddata: %w", err)
		}
		ip.EndData = &endData
	}
	if flags.Changed("encoding") {
		ip.Encoding, _ = flags.GetString("encoding")
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		ip.Print()
	}
	return ip, nil
}

func writeModel(m *model.Model, out string, ip *InputParameters.WriteParameters) error {
	if out == "" {
		return fmt.Errorf("must supply an output file (-o, --output)")
	}
	opts, err := ip.WriterOptions()
	if err != nil {
		return err
	}
	if ip.Encoding != "" {
		m.Encoding = ip.Encoding
	}
	if err := writer.WriteFile(m, out, opts); err != nil {
		return err
	}
	slog.Info("wrote deck", "file", out, "card types", len(m.CardCount()), "size", opts.Size, "precision", opts.Precision)
	return nil
}
