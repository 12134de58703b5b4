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

	"github.com/spf13/cobra"

	"github.com/notargets/gobdf/bdf/convert"
)

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an SU2 or Gambit neutral mesh into a bulk data deck",
	Long: `Convert an SU2 (.su2) or Gambit neutral (.neu) mesh (-F) into a bulk data deck (-o).
Every element group gets a PSHELL, PSOLID or PROD and all share one MAT1 taken
from the Material section of the parameter file. Boundary markers become SET1 cards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := writeParameters(cmd.Flags())
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			return fmt.Errorf("must supply a mesh file (-F, --file) in .su2 or .neu format")
		}
		m, err := convert.ReadMeshFile(file, ip.ConvertOptions())
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		return writeModel(m, out, ip)
	},
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	addWriteFlags(ConvertCmd.Flags(), "mesh file to read in SU2 (.su2) or Gambit (.neu) format")
}
