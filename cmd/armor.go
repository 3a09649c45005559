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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	kerrors "github.com/bgallie/notecipher/internal/errors"
)

// armor selects how ciphertext is written.
type armor int

const (
	armorNone armor = iota
	armorASCII85
	armorPem
)

const (
	armorHeader  = "+NC|"
	pemPrefix    = "-----"
	pemBlockType = "NOTECIPHER Encrypted Message"
)

func parseArmor(s string) (armor, error) {
	switch strings.ToLower(s) {
	case "", "none", "text":
		return armorNone, nil
	case "ascii85", "a":
		return armorASCII85, nil
	case "pem", "p":
		return armorPem, nil
	}

	return armorNone, fmt.Errorf("unknown armor %q", s)
}

// armorOptions describes the armor of one ciphertext.  length is the
// ciphertext size in bytes before compression and armor.
type armorOptions struct {
	kind        armor
	compression bool
	fileName    string
	length      int
}

// stringReader feeds s into a pipe so it can be handed to the filters.
func stringReader(s string) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	go func() {
		_, err := io.WriteString(rWrtr, s)
		rWrtr.CloseWithError(err)
	}()
	return rRdr
}

// cipherSource returns the reader the armor filters consume.
func cipherSource(cipherText string, compression bool) io.Reader {
	var src io.Reader = stringReader(cipherText)
	if compression {
		src = flate.ToFlate(src)
	}
	return src
}

// writeArmored writes cipherText to w using the armor described by opts.
func writeArmored(w io.Writer, cipherText string, opts armorOptions) error {
	var err error
	length := strconv.Itoa(len(cipherText))

	switch opts.kind {
	case armorNone:
		_, err = io.WriteString(w, cipherText)
	case armorASCII85:
		headerLine := fmt.Sprintf("%s%s|%v|%s\n", armorHeader, opts.fileName, opts.compression, length)
		if _, err = io.WriteString(w, headerLine); err != nil {
			return err
		}
		src := cipherSource(cipherText, opts.compression)
		_, err = io.Copy(w, lines.SplitToLines(ascii85.ToASCII85(src)))
	case armorPem:
		var blck pem.Block
		blck.Type = pemBlockType
		blck.Headers = make(map[string]string)
		if len(opts.fileName) > 0 {
			blck.Headers["FileName"] = opts.fileName
		}
		blck.Headers["Compression"] = strconv.FormatBool(opts.compression)
		blck.Headers["Length"] = length
		src := cipherSource(cipherText, opts.compression)
		_, err = io.Copy(w, pem.ToPem(bufio.NewReader(src), blck))
	}

	return err
}

// parseArmorHeader splits an ASCII85 armor header line into the file name,
// the compression flag and the ciphertext length.  File names may contain
// '|'.
func parseArmorHeader(line string) (string, bool, int, error) {
	malformed := fmt.Errorf("%q: %w", line, kerrors.ErrMalformedArmor)
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, armorHeader) {
		return "", false, 0, malformed
	}

	fields := line[len(armorHeader):]
	sep := strings.LastIndex(fields, "|")
	if sep < 0 {
		return "", false, 0, malformed
	}
	length, err := strconv.Atoi(fields[sep+1:])
	if err != nil || length < 0 {
		return "", false, 0, malformed
	}

	fields = fields[:sep]
	sep = strings.LastIndex(fields, "|")
	if sep < 0 {
		return "", false, 0, malformed
	}
	compression, err := strconv.ParseBool(fields[sep+1:])
	if err != nil {
		return "", false, 0, malformed
	}

	return fields[:sep], compression, length, nil
}

// parsePemHeaders reads the armor options carried in the PEM block headers.
func parsePemHeaders(headers map[string]string) (armorOptions, error) {
	opts := armorOptions{kind: armorPem}
	opts.fileName = headers["FileName"]
	opts.compression = headers["Compression"] == "true"

	length, err := strconv.Atoi(headers["Length"])
	if err != nil || length < 0 {
		return opts, fmt.Errorf("PEM Length header %q: %w", headers["Length"], kerrors.ErrMalformedArmor)
	}
	opts.length = length

	return opts, nil
}

// readArmored reads the ciphertext from r, removing any armor.  Unless raw
// is set the armor is detected from the first bytes of the input.  Armored
// ciphertext whose size differs from the recorded length is rejected.
func readArmored(r io.Reader, raw bool) (string, armorOptions, error) {
	var opts armorOptions
	input, err := io.ReadAll(r)
	if err != nil {
		return "", opts, err
	}

	if !raw {
		switch {
		case bytes.HasPrefix(input, []byte(pemPrefix)):
			// The pem filter exits the process on a missing END line, so
			// check for it first.
			if !bytes.Contains(input, []byte("\n"+pemPrefix+"END ")) {
				return "", opts, fmt.Errorf("PEM END line missing: %w", kerrors.ErrMalformedArmor)
			}
			var blck pem.Block
			var pRdr *io.PipeReader
			pRdr, blck = pem.FromPem(bufio.NewReader(bytes.NewReader(input)))
			if opts, err = parsePemHeaders(blck.Headers); err != nil {
				pRdr.Close()
				return "", opts, err
			}
			return readCipherText(pRdr, opts)
		case bytes.HasPrefix(input, []byte(armorHeader)):
			bRdr := bufio.NewReader(bytes.NewReader(input))
			line, err := bRdr.ReadString('\n')
			if err != nil {
				return "", opts, fmt.Errorf("%q: %w", line, kerrors.ErrMalformedArmor)
			}
			opts.kind = armorASCII85
			if opts.fileName, opts.compression, opts.length, err = parseArmorHeader(line); err != nil {
				return "", opts, err
			}
			return readCipherText(ascii85.FromASCII85(lines.CombineLines(bRdr)), opts)
		}
	}

	return string(input), opts, nil
}

func readCipherText(rdr *io.PipeReader, opts armorOptions) (string, armorOptions, error) {
	var flateRdr *io.PipeReader = rdr
	if opts.compression {
		flateRdr = flate.FromFlate(rdr)
	}

	b, err := io.ReadAll(flateRdr)
	if err != nil {
		return "", opts, err
	}

	if len(b) != opts.length {
		return "", opts, fmt.Errorf("read %d ciphertext bytes, armor records %d: %w", len(b), opts.length, kerrors.ErrMalformedArmor)
	}

	return string(b), opts, nil
}
