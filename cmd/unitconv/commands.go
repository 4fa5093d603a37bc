package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/unitcode"
	"github.com/arloliu/unitcode/format"
	"github.com/arloliu/unitcode/internal/logging"
	"github.com/arloliu/unitcode/record"
	"github.com/arloliu/unitcode/unit"
	"github.com/arloliu/unitcode/unitsystem"
)

// parseCode reads a unit code written in decimal or with a 0x prefix.
func parseCode(s string) (unit.Code, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unit code %q: %w", s, err)
	}

	return unit.Code(v), nil
}

// resolveSystem returns the system named by flag, or the configured one.
func (rt *runtime) resolveSystem(flag string) (unitsystem.System, error) {
	if flag == "" {
		return rt.cfg.System, nil
	}

	return unitsystem.ParseSystem(flag)
}

// ConvertCmd converts one value.
type ConvertCmd struct {
	Value    float64 `arg:"" help:"Value to convert; put negative values after --"`
	From     string  `required:"" help:"Unit code of the value (decimal or 0x hex)"`
	To       string  `help:"Target unit code (decimal or 0x hex)"`
	Quantity string  `help:"Convert into the preferred unit of this quantity instead of --to"`
	System   string  `help:"Unit system for --quantity (metric, imperial)"`
}

func (c *ConvertCmd) Run(rt *runtime) error {
	from, err := parseCode(c.From)
	if err != nil {
		return err
	}

	to, err := c.target(rt)
	if err != nil {
		return err
	}

	for _, code := range []unit.Code{from, to} {
		if !code.Valid() {
			logging.Warn("unit code is not recognized, value passes through unchanged", "code", code.String())
		}
	}

	result := unitcode.Convert(c.Value, from, to)
	logging.Debug("converted", "from", from.String(), "to", to.String(), "value", c.Value, "result", result)

	_, err = fmt.Fprintf(rt.out, "%s %s\n", rt.printer.Value(result), to)

	return err
}

func (c *ConvertCmd) target(rt *runtime) (unit.Code, error) {
	switch {
	case c.To != "" && c.Quantity != "":
		return 0, errors.New("--to and --quantity are mutually exclusive")
	case c.To != "":
		return parseCode(c.To)
	case c.Quantity != "":
		q, err := unitsystem.ParseQuantity(c.Quantity)
		if err != nil {
			return 0, err
		}
		system, err := rt.resolveSystem(c.System)
		if err != nil {
			return 0, err
		}

		return unitcode.Preferred(q, system), nil
	default:
		return 0, errors.New("one of --to or --quantity is required")
	}
}

// PreferredCmd prints preferred units.
type PreferredCmd struct {
	Quantity string `arg:"" optional:"" help:"Quantity name (e.g. speed, distance-large); all when omitted"`
	System   string `help:"Unit system (metric, imperial)"`
}

func (c *PreferredCmd) Run(rt *runtime) error {
	system, err := rt.resolveSystem(c.System)
	if err != nil {
		return err
	}

	quantities := unitsystem.Quantities()
	if c.Quantity != "" {
		q, err := unitsystem.ParseQuantity(c.Quantity)
		if err != nil {
			return err
		}
		quantities = []unitsystem.Quantity{q}
	}

	for _, q := range quantities {
		code := unitcode.Preferred(q, system)
		if _, err := fmt.Fprintf(rt.out, "%-16s 0x%08x %s\n", q, uint64(code), code); err != nil {
			return err
		}
	}

	return nil
}

// EncodeCmd writes a record file.
type EncodeCmd struct {
	Values      []float64 `arg:"" help:"Values to store; put them after -- when any is negative"`
	Unit        string    `required:"" help:"Unit code the record stores values in"`
	From        string    `help:"Unit code the given values are in; converted into --unit"`
	Quantity    string    `help:"Quantity name stored as a hash in the header"`
	Compression string    `default:"zstd" enum:"none,zstd,s2,lz4" help:"Payload compression"`
	Encoding    string    `default:"gorilla" enum:"raw,gorilla" help:"Value encoding"`
	BigEndian   bool      `name:"big-endian" help:"Write the record big-endian"`
	Out         string    `required:"" short:"o" type:"path" help:"Output file"`
}

func (c *EncodeCmd) Run(rt *runtime) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	u, err := parseCode(c.Unit)
	if err != nil {
		return err
	}

	data, err := unitcode.Encode(u, c.Values, opts...)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := os.WriteFile(c.Out, data, 0o644); err != nil { //nolint:gosec // record files are not secret
		return fmt.Errorf("failed to write record: %w", err)
	}

	logging.Info("record written", "file", c.Out, "values", len(c.Values), "bytes", len(data))
	_, err = fmt.Fprintf(rt.out, "wrote %s values (%s bytes) to %s\n",
		rt.printer.Count(len(c.Values)), rt.printer.Count(len(data)), c.Out)

	return err
}

func (c *EncodeCmd) options() ([]record.EncoderOption, error) {
	comp, err := format.ParseCompression(c.Compression)
	if err != nil {
		return nil, err
	}
	enc, err := format.ParseEncoding(c.Encoding)
	if err != nil {
		return nil, err
	}

	opts := []record.EncoderOption{
		record.WithCompression(comp),
		record.WithEncoding(enc),
		record.WithQuantity(c.Quantity),
	}
	if c.BigEndian {
		opts = append(opts, record.WithBigEndian())
	}
	if c.From != "" {
		from, err := parseCode(c.From)
		if err != nil {
			return nil, err
		}
		opts = append(opts, record.WithSourceUnit(from))
	}

	return opts, nil
}

// InspectCmd prints a record file.
type InspectCmd struct {
	File     string `arg:"" type:"existingfile" help:"Record file"`
	To       string `help:"Print values converted into this unit code"`
	Quantity string `help:"Check the record against this quantity name"`
	Limit    int    `default:"20" help:"Maximum number of values to print (0 for all)"`
}

func (c *InspectCmd) Run(rt *runtime) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	dec, err := unitcode.NewDecoder(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", c.File, err)
	}

	if c.Quantity != "" && !dec.HasQuantity(c.Quantity) {
		return fmt.Errorf("%s does not hold quantity %q", c.File, c.Quantity)
	}

	values, shown := dec.Values(), dec.Unit()
	if c.To != "" {
		to, err := parseCode(c.To)
		if err != nil {
			return err
		}
		values, shown = dec.ValuesIn(to), to
	}

	c.printHeader(rt, dec)

	limit := len(values)
	if c.Limit > 0 && c.Limit < limit {
		limit = c.Limit
	}
	for i, v := range values[:limit] {
		fmt.Fprintf(rt.out, "%6d  %s %s\n", i, rt.printer.Value(v), shown)
	}
	if limit < len(values) {
		fmt.Fprintf(rt.out, "... %s more\n", rt.printer.Count(len(values)-limit))
	}

	return nil
}

func (c *InspectCmd) printHeader(rt *runtime, dec *record.Decoder) {
	h := dec.Header()
	stats := dec.Stats()

	byteOrder := "little-endian"
	if h.Flag.IsBigEndian() {
		byteOrder = "big-endian"
	}

	fmt.Fprintf(rt.out, "unit:        %s (%#x)\n", h.Unit, uint64(h.Unit))
	fmt.Fprintf(rt.out, "dimension:   %s\n", h.Unit.Dimension())
	if dec.QuantityID() != 0 {
		fmt.Fprintf(rt.out, "quantity:    0x%016x\n", dec.QuantityID())
	}
	fmt.Fprintf(rt.out, "values:      %s\n", rt.printer.Count(dec.Len()))
	fmt.Fprintf(rt.out, "encoding:    %s, %s\n", h.Flag.ValueEncoding(), byteOrder)
	fmt.Fprintf(rt.out, "compression: %s (%s -> %s bytes, %s saved)\n",
		stats.Algorithm,
		rt.printer.Count(int(stats.OriginalSize)),
		rt.printer.Count(int(stats.CompressedSize)),
		rt.printer.Percent(stats.SpaceSavings()/100))
	fmt.Fprintf(rt.out, "checksum:    0x%08x\n", h.Checksum)
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(rt *runtime) error {
	_, err := fmt.Fprintf(rt.out, "unitconv %s\n", version)
	return err
}
