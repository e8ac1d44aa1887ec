package qr

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"qrtable/base"
	"qrtable/constants"
	"qrtable/logger"
	"qrtable/utils"
)

type Options struct {
	Format Format
	// Wrap encloses the bracket formats in an outer pair of brackets.
	Wrap bool
}

// ECTable is a validated error correction table ready to be printed.
type ECTable struct {
	table  base.VersionTable
	format Format
	wrap   bool
	log    *logger.Logger
}

// NewECTable validates table and returns an emitter for it. Nothing is
// printed for a malformed table.
func NewECTable(table base.VersionTable, opts Options) (*ECTable, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	if err := base.Validate(table); err != nil {
		return nil, err
	}
	return &ECTable{
		table:  table,
		format: format,
		wrap:   opts.Wrap,
		log:    logger.Named("table"),
	}, nil
}

// Rows returns the table as a nested array indexed by
// [version-1][level index][column].
func (t *ECTable) Rows() [][][]int {
	columns := t.format.columns()
	rows := make([][][]int, 0, constants.MAX_VERSION)
	for version := constants.MIN_VERSION; version <= constants.MAX_VERSION; version++ {
		row := make([][]int, 0, len(constants.Levels))
		for _, level := range constants.Levels {
			params := t.table[version][level]
			row = append(row, append([]int(nil), params[:columns]...))
		}
		rows = append(rows, row)
	}
	return rows
}

// Capacity returns the number of error correction codewords per block.
func (t *ECTable) Capacity(version int, level constants.Level) (int, error) {
	if !utils.CheckVersion(version) {
		return 0, fmt.Errorf("invalid version: %d", version)
	}
	if level.Index() < 0 {
		return 0, fmt.Errorf("%w: %s", constants.ErrUnknownLevel, level)
	}
	return t.table[version][level].ECCodewordsPerBlock(), nil
}

// PrintArray writes the table to out in a single write.
func (t *ECTable) PrintArray(out io.Writer) error {
	var buf bytes.Buffer
	var err error
	switch t.format {
	case FormatYAML:
		err = t.writeYAML(&buf)
	default:
		t.writeBrackets(&buf)
	}
	if err != nil {
		return err
	}

	t.log.Debugw("emitting table", "format", t.format, "wrap", t.wrap, "bytes", buf.Len())
	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func (t *ECTable) writeBrackets(buf *bytes.Buffer) {
	rows := t.Rows()
	if t.wrap {
		buf.WriteString("[\n")
	}
	for i, row := range rows {
		buf.WriteByte('[')
		for j, params := range row {
			buf.WriteByte('[')
			for k, value := range params {
				if k > 0 {
					buf.WriteByte(',')
				}
				buf.WriteString(strconv.Itoa(value))
			}
			buf.WriteByte(']')
			if j < len(row)-1 {
				buf.WriteByte(',')
			}
		}
		buf.WriteByte(']')
		if i < len(rows)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	if t.wrap {
		buf.WriteString("]\n")
	}
}

type yamlLevel struct {
	ECCodewordsPerBlock int `yaml:"ec_codewords_per_block"`
	Group1Blocks        int `yaml:"group1_blocks"`
	Group1DataCodewords int `yaml:"group1_data_codewords"`
	Group2Blocks        int `yaml:"group2_blocks"`
	Group2DataCodewords int `yaml:"group2_data_codewords"`
	TotalDataCodewords  int `yaml:"total_data_codewords"`
	DataBits            int `yaml:"data_bits"`
}

type yamlLevels struct {
	L yamlLevel `yaml:"L"`
	M yamlLevel `yaml:"M"`
	Q yamlLevel `yaml:"Q"`
	H yamlLevel `yaml:"H"`
}

type yamlVersion struct {
	Version int        `yaml:"version"`
	Levels  yamlLevels `yaml:"levels"`
}

func (t *ECTable) levelYAML(version int, level constants.Level) (yamlLevel, error) {
	p := t.table[version][level]
	bits, err := base.DataBitLimit(t.table, version, level)
	if err != nil {
		return yamlLevel{}, err
	}
	return yamlLevel{
		ECCodewordsPerBlock: p.ECCodewordsPerBlock(),
		Group1Blocks:        p.Group1Blocks(),
		Group1DataCodewords: p.Group1DataCodewords(),
		Group2Blocks:        p.Group2Blocks(),
		Group2DataCodewords: p.Group2DataCodewords(),
		TotalDataCodewords:  p.TotalDataCodewords(),
		DataBits:            bits,
	}, nil
}

func (t *ECTable) writeYAML(buf *bytes.Buffer) error {
	versions := make([]yamlVersion, 0, constants.MAX_VERSION)
	for version := constants.MIN_VERSION; version <= constants.MAX_VERSION; version++ {
		levels := make([]yamlLevel, len(constants.Levels))
		for i, level := range constants.Levels {
			l, err := t.levelYAML(version, level)
			if err != nil {
				return err
			}
			levels[i] = l
		}
		versions = append(versions, yamlVersion{
			Version: version,
			Levels:  yamlLevels{L: levels[0], M: levels[1], Q: levels[2], H: levels[3]},
		})
	}

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(versions); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
