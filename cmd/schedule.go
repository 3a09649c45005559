/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

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

	"github.com/bgallie/notecipher/cryptors/keyschedule"
	"github.com/spf13/cobra"
)

var showTables bool

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule [code]",
	Short: "Show the rotor schedule derived from a code",
	Long:  `Show the padded code digits and rotor seeds derived from a code, and optionally every rotor table.` + codeArgsHelp,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := getCode(cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "code:   %d\n", code)
		fmt.Fprintf(out, "digits: %s\n", keyschedule.Digits(code))
		for i, seeds := range keyschedule.RotorSeeds(code) {
			fmt.Fprintf(out, "set %d:  %v\n", i, seeds)
		}

		if showTables {
			fmt.Fprint(out, keyschedule.Generate(code).String())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().BoolVarP(&showTables, "tables", "t", false, "print every rotor table")
}
