// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command crsconv reads whitespace-separated x y [z] coordinates on stdin
// and writes their reprojection to stdout, one line per non-blank input line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/samlecuyer/crs"
)

var log = logrus.StandardLogger()

// config is the optional TOML file of named CRS aliases and a default
// tolerance, decoded the way inmap's own Config is.
type config struct {
	Tolerance float64           `toml:"tolerance"`
	Aliases   map[string]string `toml:"aliases"`
}

var (
	fromFlag    string
	toFlag      string
	inverseFlag bool
	verboseFlag bool
	configFlag  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crsconv",
	Short: "Reproject coordinates between two proj-string CRSes",
	Long: `crsconv reads whitespace-separated "x y [z]" coordinates from stdin and
writes their reprojection from --from to --to on stdout, one line per
non-blank input line. Pass --inverse to swap --from and --to without rewriting either flag.`,
	DisableAutoGenTag: true,
	RunE:              run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&fromFlag, "from", "", "source CRS, as a proj-string or a configured alias")
	flags.StringVar(&toFlag, "to", "", "destination CRS, as a proj-string or a configured alias")
	flags.BoolVar(&inverseFlag, "inverse", false, "swap --from and --to")
	flags.BoolVar(&verboseFlag, "verbose", false, "log each resolved CRS's ellipsoid and datum at startup")
	flags.StringVar(&configFlag, "config", "", "optional TOML file of named CRS aliases and a default tolerance")
	pflag.CommandLine.AddFlagSet(flags)
}

func run(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(configFlag)
	if err != nil {
		return err
	}

	fromStr, toStr := fromFlag, toFlag
	if inverseFlag {
		fromStr, toStr = toStr, fromStr
	}
	if fromStr == "" || toStr == "" {
		return errors.New("both --from and --to are required")
	}

	src, err := resolveCRS(cfg, fromStr)
	if err != nil {
		return errors.Wrap(err, "resolving --from")
	}
	dst, err := resolveCRS(cfg, toStr)
	if err != nil {
		return errors.Wrap(err, "resolving --to")
	}

	log.WithFields(logrus.Fields{
		"proj": src.ProjName, "a": src.A, "es": src.ES, "datum": src.Datum.Kind,
	}).Debug("resolved --from CRS")
	log.WithFields(logrus.Fields{
		"proj": dst.ProjName, "a": dst.A, "es": dst.ES, "datum": dst.Datum.Kind,
	}).Debug("resolved --to CRS")

	return convertStream(src, dst, cmd.InOrStdin(), cmd.OutOrStdout())
}

// loadConfig decodes the optional TOML alias file. A missing --config is
// not an error; an unreadable or malformed one is.
func loadConfig(path string) (*config, error) {
	cfg := &config{}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding config %q", path)
	}
	return cfg, nil
}

// resolveCRS expands a configured alias (if any) before falling back to
// treating spec directly as a proj-string.
func resolveCRS(cfg *config, spec string) (*crs.CRS, error) {
	if cfg != nil {
		if alias, ok := cfg.Aliases[spec]; ok {
			spec = alias
		}
	}
	c, err := crs.NewCRS(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing CRS %q", spec)
	}
	return c, nil
}

// convertStream transforms each whitespace-separated "x y [z]" line from r,
// writing the result to w.
func convertStream(src, dst *crs.CRS, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		x, y, z, err := parseLine(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		tx, ty, tz, err := crs.TransformVertex3D(src, dst, x, y, z)
		if err != nil {
			return errors.Wrapf(err, "line %d: transforming (%g, %g, %g)", lineNo, x, y, z)
		}
		if tz != 0 {
			fmt.Fprintf(bw, "%.10g %.10g %.10g\n", tx, ty, tz)
		} else {
			fmt.Fprintf(bw, "%.10g %.10g\n", tx, ty)
		}
	}
	return scanner.Err()
}

func parseLine(line string) (x, y, z float64, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, 0, errors.Errorf("expected 2 or 3 fields, got %d", len(fields))
	}
	x, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "parsing x")
	}
	y, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "parsing y")
	}
	if len(fields) == 3 {
		z, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, 0, 0, errors.Wrap(err, "parsing z")
		}
	}
	return x, y, z, nil
}
