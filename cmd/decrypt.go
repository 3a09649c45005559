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
	"io"

	"github.com/bgallie/notecipher/engine"
	"github.com/spf13/cobra"
)

var rawInput bool

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [code]",
	Short: "Decrypt text encrypted by notecipher.",
	Long:  `Decrypt text encrypted by the notecipher rotor cipher.  ASCII85 and PEM armor are detected automatically.` + codeArgsHelp,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decrypt(cmd, args)
	},
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:        "decode [code]",
	Short:      "Decode text encoded by notecipher.",
	Long:       `[DEPRECATED] Decode text encoded by the notecipher rotor cipher.` + codeArgsHelp,
	Deprecated: "use \"decrypt\" instead.",
	Args:       cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decrypt(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(decodeCmd)
	for _, c := range []*cobra.Command{decryptCmd, decodeCmd} {
		c.Flags().BoolVarP(&rawInput, "raw", "r", false, "treat the input as plain ciphertext, skipping armor detection")
	}
}

func decrypt(cmd *cobra.Command, args []string) error {
	code, err := getCode(cmd, args)
	if err != nil {
		return err
	}

	fin, err := getInput(cmd)
	if err != nil {
		return err
	}
	defer fin.Close()

	cipherText, opts, err := readArmored(fin, rawInput)
	if err != nil {
		return fmt.Errorf("reading the ciphertext: %w", err)
	}
	Logger.Debugf("Decrypting %d bytes (armor %d, compressed %t)", len(cipherText), opts.kind, opts.compression)
	if len(opts.fileName) > 0 {
		Logger.Infof("Ciphertext was made from %s", opts.fileName)
	}

	fout, err := getOutput(cmd, false)
	if err != nil {
		return err
	}
	defer fout.Close()

	if _, err := io.WriteString(fout, engine.Decrypt(cipherText, code)); err != nil {
		return fmt.Errorf("writing the plaintext: %w", err)
	}

	return fout.Close()
}
