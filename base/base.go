package base

import (
	"fmt"
	"sort"

	"qrtable/constants"
	"qrtable/utils"
)

// ECParams is the error correction layout of one version/level pair.
type ECParams [5]int

func (p ECParams) ECCodewordsPerBlock() int { return p[0] }
func (p ECParams) Group1Blocks() int { return p[1] }
func (p ECParams) Group1DataCodewords() int { return p[2] }
func (p ECParams) Group2Blocks() int { return p[3] }
func (p ECParams) Group2DataCodewords() int { return p[4] }

// TotalDataCodewords returns the number of data codewords over all blocks.
func (p ECParams) TotalDataCodewords() int {
	return p.Group1Blocks()*p.Group1DataCodewords() + p.Group2Blocks()*p.Group2DataCodewords()
}

// LevelRow maps every error correction level of a version to its layout.
type LevelRow map[constants.Level]ECParams

// VersionTable maps a version number to its LevelRow.
type VersionTable map[int]LevelRow

// Validate checks the shape of a table: versions 1..40 exactly once, the
// four levels in every row and no negative values. Versions are checked in
// ascending order and levels in table order, so the first violation is
// the one reported.
func Validate(table VersionTable) error {
	for version := constants.MIN_VERSION; version <= constants.MAX_VERSION; version++ {
		row, ok := table[version]
		if !ok {
			return utils.NewMalformedTableError(version, "", "version missing")
		}
		for _, level := range constants.Levels {
			params, ok := row[level]
			if !ok {
				return utils.NewMalformedTableError(version, level.String(), "level missing")
			}
			for i, value := range params {
				if value < 0 {
					return utils.NewMalformedTableError(version, level.String(),
						fmt.Sprintf("negative value %d at index %d", value, i))
				}
			}
		}
		if len(row) != len(constants.Levels) {
			for level := range row {
				if level.Index() < 0 {
					return utils.NewMalformedTableError(version, level.String(), "unexpected level")
				}
			}
		}
	}

	var extra []int
	for version := range table {
		if !utils.CheckVersion(version) {
			extra = append(extra, version)
		}
	}
	if len(extra) > 0 {
		sort.Ints(extra)
		return utils.NewMalformedTableError(extra[0], "", "version out of range")
	}
	return nil
}

func lookup(table VersionTable, version int, level constants.Level) (ECParams, error) {
	if !utils.CheckVersion(version) {
		return ECParams{}, fmt.Errorf("invalid version: %d", version)
	}
	params, ok := table[version][level]
	if !ok {
		return ECParams{}, fmt.Errorf("bad rs block @ version: %d / error_correction: %s", version, level)
	}
	return params, nil
}

type RSBlock struct {
	TotalCount int
	DataCount  int
}

// RSBlocks expands the layout of a version/level pair into its blocks,
// group 1 first.
func RSBlocks(table VersionTable, version int, level constants.Level) ([]RSBlock, error) {
	params, err := lookup(table, version, level)
	if err != nil {
		return nil, err
	}
	ecCount := params.ECCodewordsPerBlock()

	groups := [][2]int{
		{params.Group1Blocks(), params.Group1DataCodewords()},
		{params.Group2Blocks(), params.Group2DataCodewords()},
	}

	var blocks []RSBlock
	for _, group := range groups {
		count, dataCount := group[0], group[1]
		for j := 0; j < count; j++ {
			blocks = append(blocks, RSBlock{TotalCount: dataCount + ecCount, DataCount: dataCount})
		}
	}
	return blocks, nil
}

// DataBitLimit returns the number of data bits a symbol of the given
// version and level can hold.
func DataBitLimit(table VersionTable, version int, level constants.Level) (int, error) {
	blocks, err := RSBlocks(table, version, level)
	if err != nil {
		return 0, err
	}
	bitCount := 0
	for _, block := range blocks {
		bitCount += 8 * block.DataCount
	}
	return bitCount, nil
}
