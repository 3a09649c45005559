package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	color.NoColor = true

	cases := []struct {
		name    string
		logger  Logger
		want    []string
		notWant []string
	}{
		{"quiet", Logger{}, []string{"[warn] w", "[error] e"}, []string{"[info]", "[debug]"}},
		{"verbose", Logger{Verbose: true}, []string{"[info] i", "[warn] w"}, []string{"[debug]"}},
		{"debug", Logger{Debug: true}, []string{"[info] i", "[debug] d 1"}, nil},
	}

	for _, c := range cases {
		var buf bytes.Buffer
		c.logger.Out = &buf
		c.logger.Infof("i")
		c.logger.Debugf("d %d", 1)
		c.logger.Warnf("w")
		c.logger.Errorf("e")

		for _, w := range c.want {
			require.Contains(t, buf.String(), w, c.name)
		}
		for _, w := range c.notWant {
			require.NotContains(t, buf.String(), w, c.name)
		}
	}
}
