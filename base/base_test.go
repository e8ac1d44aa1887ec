package base_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrtable/base"
	"qrtable/constants"
	"qrtable/utils"
)

func cloneTable() base.VersionTable {
	table := make(base.VersionTable, len(base.EC_BLOCK_TABLE))
	for version, row := range base.EC_BLOCK_TABLE {
		clone := make(base.LevelRow, len(row))
		for level, params := range row {
			clone[level] = params
		}
		table[version] = clone
	}
	return table
}

func TestValidate_EmbeddedTable(t *testing.T) {
	require.NoError(t, base.Validate(base.EC_BLOCK_TABLE))
	assert.Len(t, base.EC_BLOCK_TABLE, 40)
}

func TestValidate_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(base.VersionTable)
		version int
		level   string
	}{
		{"MissingVersion", func(tb base.VersionTable) { delete(tb, 17) }, 17, ""},
		{"MissingLevel", func(tb base.VersionTable) { delete(tb[3], constants.ERROR_CORRECT_Q) }, 3, "Q"},
		{"NegativeValue", func(tb base.VersionTable) {
			p := tb[5][constants.ERROR_CORRECT_H]
			p[3] = -1
			tb[5][constants.ERROR_CORRECT_H] = p
		}, 5, "H"},
		{"ExtraLevel", func(tb base.VersionTable) { tb[2][constants.Level(9)] = base.ECParams{} }, 2, "Level(9)"},
		{"VersionZero", func(tb base.VersionTable) { tb[0] = tb[1] }, 0, ""},
		{"Version41", func(tb base.VersionTable) { tb[41] = tb[40] }, 41, ""},
		{"FirstViolationWins", func(tb base.VersionTable) {
			delete(tb, 30)
			delete(tb[8], constants.ERROR_CORRECT_L)
		}, 8, "L"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := cloneTable()
			tc.mutate(table)

			err := base.Validate(table)
			var malformed *utils.MalformedTableError
			require.True(t, errors.As(err, &malformed), "Validate() error = %v; want MalformedTableError", err)
			assert.Equal(t, tc.version, malformed.Version)
			assert.Equal(t, tc.level, malformed.Level)
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	table := cloneTable()
	require.NoError(t, base.Validate(table))
	assert.Equal(t, base.EC_BLOCK_TABLE, table)
}

func TestECParamsAccessors(t *testing.T) {
	p := base.EC_BLOCK_TABLE[5][constants.ERROR_CORRECT_Q]
	assert.Equal(t, 18, p.ECCodewordsPerBlock())
	assert.Equal(t, 2, p.Group1Blocks())
	assert.Equal(t, 15, p.Group1DataCodewords())
	assert.Equal(t, 2, p.Group2Blocks())
	assert.Equal(t, 16, p.Group2DataCodewords())
	assert.Equal(t, 62, p.TotalDataCodewords())
}

// Block layouts as {count, total, data} triples, the way Reed-Solomon block
// tables are usually written.
func TestRSBlocks(t *testing.T) {
	cases := []struct {
		version int
		level   constants.Level
		layout  []int
	}{
		{1, constants.ERROR_CORRECT_L, []int{1, 26, 19}},
		{5, constants.ERROR_CORRECT_Q, []int{2, 33, 15, 2, 34, 16}},
		{10, constants.ERROR_CORRECT_L, []int{2, 86, 68, 2, 87, 69}},
		{22, constants.ERROR_CORRECT_H, []int{34, 37, 13}},
		{40, constants.ERROR_CORRECT_H, []int{20, 45, 15, 61, 46, 16}},
	}
	for _, tc := range cases {
		t.Run(tc.level.String(), func(t *testing.T) {
			var want []base.RSBlock
			for i := 0; i < len(tc.layout); i += 3 {
				for j := 0; j < tc.layout[i]; j++ {
					want = append(want, base.RSBlock{TotalCount: tc.layout[i+1], DataCount: tc.layout[i+2]})
				}
			}

			got, err := base.RSBlocks(base.EC_BLOCK_TABLE, tc.version, tc.level)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRSBlocks_Invalid(t *testing.T) {
	_, err := base.RSBlocks(base.EC_BLOCK_TABLE, 0, constants.ERROR_CORRECT_L)
	assert.Error(t, err)
	_, err = base.RSBlocks(base.EC_BLOCK_TABLE, 41, constants.ERROR_CORRECT_L)
	assert.Error(t, err)
	_, err = base.RSBlocks(base.EC_BLOCK_TABLE, 1, constants.Level(9))
	assert.Error(t, err)
}

func TestDataBitLimit(t *testing.T) {
	bits, err := base.DataBitLimit(base.EC_BLOCK_TABLE, 1, constants.ERROR_CORRECT_L)
	require.NoError(t, err)
	assert.Equal(t, 152, bits)

	bits, err = base.DataBitLimit(base.EC_BLOCK_TABLE, 40, constants.ERROR_CORRECT_L)
	require.NoError(t, err)
	assert.Equal(t, 2956*8, bits)

	for version := 1; version <= 40; version++ {
		for _, level := range constants.Levels {
			bits, err := base.DataBitLimit(base.EC_BLOCK_TABLE, version, level)
			require.NoError(t, err)
			assert.Equal(t, 8*base.EC_BLOCK_TABLE[version][level].TotalDataCodewords(), bits)
		}
	}
}
