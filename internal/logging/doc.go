// Package logger provides leveled, colored logging for the notecipher
// commands.
//
// Verbosity comes from two persistent flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown.  Every message goes to the logger's
// writer (stderr by default) so that stdout carries only cipher output.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %s", name)
package logger
