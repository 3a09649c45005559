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
	"os"
	"strconv"
	"strings"

	kerrors "github.com/bgallie/notecipher/internal/errors"
	logger "github.com/bgallie/notecipher/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	verbose        bool
	debug          bool
	Logger         logger.Logger
	Version        string = "dev"
)

const (
	codeKey       = "NOTECIPHER_CODE"
	configName    = ".notecipher"
	cipherSuffix  = ".nc"
	armorKey      = "armor"
	compressKey   = "compress"
	stdStreamName = "-"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "notecipher",
	Short:   "A keyed rotor cipher for notes",
	Long:    `notecipher encrypts and decrypts text with a numeric code using a layered rotor cipher.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
			Out:     cmd.ErrOrStderr(),
		}
		Logger.Debugf("Running %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		if f := viper.ConfigFileUsed(); f != "" {
			Logger.Infof("Using config file: %s", f)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and logs the error it returns.
func execute() error {
	err := rootCmd.Execute()
	if err != nil {
		Logger.Errorf("%v", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.notecipher.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", stdStreamName, "Name of the file to encrypt/decrypt.")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file receiving the encrypted/decrypted text.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".notecipher" (without extension).
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}

	viper.SetDefault(armorKey, "none")
	viper.SetDefault(compressKey, false)
	viper.AutomaticEnv() // read in environment variables that match

	// Only a config file named with --config has to exist.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			cobra.CheckErr(err)
		}
	}
}

// getCode obtains the code used to encrypt or decrypt from either:
// 1. Arguments from the entered command line (least secure - not recommended)
// 2. The 'NOTECIPHER_CODE' environment variable or config entry (less secure)
// 3. User input from the terminal (most secure)
func getCode(cmd *cobra.Command, args []string) (int64, error) {
	var secret string

	if len(args) > 0 {
		secret = strings.Join(args, " ")
		Logger.Debugf("Using the code from the command line")
	} else if viper.IsSet(codeKey) {
		secret = viper.GetString(codeKey)
		Logger.Debugf("Using the code from %s", codeKey)
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Enter the code: ")
		byteSecret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr(), "")
		if err != nil {
			return 0, fmt.Errorf("reading the code: %w", err)
		}
		secret = string(byteSecret)
	}

	secret = strings.TrimSpace(secret)
	if len(secret) == 0 {
		return 0, kerrors.ErrNoCode
	}

	code, err := strconv.ParseInt(secret, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", secret, kerrors.ErrInvalidCode)
	}

	return code, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// getInput returns the input to encrypt/decrypt.  The command's input
// stream is used unless an input file name was given.
func getInput(cmd *cobra.Command) (io.ReadCloser, error) {
	if len(inputFileName) == 0 || inputFileName == stdStreamName {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(inputFileName)
}

/*
	getOutput returns the output for the encrypted/decrypted text.  Without an
	output file name, encrypting a file writes <file>.nc, decrypting <file>.nc
	writes <file>, and everything else goes to the command's output stream.
*/
func getOutput(cmd *cobra.Command, encrypt bool) (io.WriteCloser, error) {
	name := outputFileName

	if len(name) == 0 && len(inputFileName) > 0 && inputFileName != stdStreamName {
		if encrypt {
			name = inputFileName + cipherSuffix
		} else if strings.HasSuffix(inputFileName, cipherSuffix) {
			name = strings.TrimSuffix(inputFileName, cipherSuffix)
		}
	}

	if len(name) == 0 || name == stdStreamName {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}

	Logger.Infof("Writing %s", name)
	return os.Create(name)
}
