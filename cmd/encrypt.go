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
	"github.com/spf13/viper"
)

var (
	useASCII85  bool
	usePem      bool
	compression bool
)

const codeArgsHelp = `
The code is an integer.  Give it as the argument, in the NOTECIPHER_CODE
environment variable or config entry, or type it at the prompt.  Put "--"
before a negative code so it is not read as a flag (eg. "encrypt -- -42").`

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [code]",
	Short: "Encrypt text with a code",
	Long:  `Encrypt text with a numeric code using the notecipher rotor cipher.` + codeArgsHelp,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return encrypt(cmd, args)
	},
}

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:        "encode [code]",
	Short:      "Encode text with a code",
	Long:       `[DEPRECATED] Encode text with a numeric code using the notecipher rotor cipher.` + codeArgsHelp,
	Deprecated: "use \"encrypt\" instead.",
	Args:       cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return encrypt(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(encodeCmd)
	for _, c := range []*cobra.Command{encryptCmd, encodeCmd} {
		c.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
		c.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
		c.Flags().BoolVarP(&compression, "compress", "c", false, "compress the ciphertext using flate (ASCII85 or PEM only)")
	}
}

// encryptOptions combines the flags with the armor and compress config
// entries.  Flags win over the config.
func encryptOptions(cmd *cobra.Command) (armorOptions, error) {
	var opts armorOptions
	var err error

	switch {
	case useASCII85 && usePem:
		return opts, fmt.Errorf("--useASCII85 and --usePem are mutually exclusive")
	case useASCII85:
		opts.kind = armorASCII85
	case usePem:
		opts.kind = armorPem
	default:
		if opts.kind, err = parseArmor(viper.GetString(armorKey)); err != nil {
			return opts, err
		}
	}

	opts.compression = compression
	if !cmd.Flags().Changed("compress") {
		opts.compression = viper.GetBool(compressKey)
	}
	if opts.compression && opts.kind == armorNone {
		Logger.Warnf("Compression needs ASCII85 or PEM armor; writing uncompressed text.")
		opts.compression = false
	}

	if len(inputFileName) > 0 && inputFileName != stdStreamName {
		opts.fileName = inputFileName
	}

	return opts, nil
}

func encrypt(cmd *cobra.Command, args []string) error {
	code, err := getCode(cmd, args)
	if err != nil {
		return err
	}

	opts, err := encryptOptions(cmd)
	if err != nil {
		return err
	}

	fin, err := getInput(cmd)
	if err != nil {
		return err
	}
	defer fin.Close()

	plainText, err := io.ReadAll(fin)
	if err != nil {
		return fmt.Errorf("reading the plaintext: %w", err)
	}
	Logger.Debugf("Encrypting %d bytes", len(plainText))

	fout, err := getOutput(cmd, true)
	if err != nil {
		return err
	}
	defer fout.Close()

	if err := writeArmored(fout, engine.Encrypt(string(plainText), code), opts); err != nil {
		return fmt.Errorf("writing the ciphertext: %w", err)
	}

	return fout.Close()
}
