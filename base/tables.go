package base

import "qrtable/constants"

// EC_BLOCK_TABLE holds, for every version and error correction level, the
// number of error correction codewords per block followed by the block
// layout of the two groups:
//
//	{ecPerBlock, group1Blocks, group1DataCodewords, group2Blocks, group2DataCodewords}
var EC_BLOCK_TABLE = VersionTable{
	1: {
		constants.ERROR_CORRECT_L: {7, 1, 19, 0, 0},
		constants.ERROR_CORRECT_M: {10, 1, 16, 0, 0},
		constants.ERROR_CORRECT_Q: {13, 1, 13, 0, 0},
		constants.ERROR_CORRECT_H: {17, 1, 9, 0, 0},
	},
	2: {
		constants.ERROR_CORRECT_L: {10, 1, 34, 0, 0},
		constants.ERROR_CORRECT_M: {16, 1, 28, 0, 0},
		constants.ERROR_CORRECT_Q: {22, 1, 22, 0, 0},
		constants.ERROR_CORRECT_H: {28, 1, 16, 0, 0},
	},
	3: {
		constants.ERROR_CORRECT_L: {15, 1, 55, 0, 0},
		constants.ERROR_CORRECT_M: {26, 1, 44, 0, 0},
		constants.ERROR_CORRECT_Q: {18, 2, 17, 0, 0},
		constants.ERROR_CORRECT_H: {22, 2, 13, 0, 0},
	},
	4: {
		constants.ERROR_CORRECT_L: {20, 1, 80, 0, 0},
		constants.ERROR_CORRECT_M: {18, 2, 32, 0, 0},
		constants.ERROR_CORRECT_Q: {26, 2, 24, 0, 0},
		constants.ERROR_CORRECT_H: {16, 4, 9, 0, 0},
	},
	5: {
		constants.ERROR_CORRECT_L: {26, 1, 108, 0, 0},
		constants.ERROR_CORRECT_M: {24, 2, 43, 0, 0},
		constants.ERROR_CORRECT_Q: {18, 2, 15, 2, 16},
		constants.ERROR_CORRECT_H: {22, 2, 11, 2, 12},
	},
	6: {
		constants.ERROR_CORRECT_L: {18, 2, 68, 0, 0},
		constants.ERROR_CORRECT_M: {16, 4, 27, 0, 0},
		constants.ERROR_CORRECT_Q: {24, 4, 19, 0, 0},
		constants.ERROR_CORRECT_H: {28, 4, 15, 0, 0},
	},
	7: {
		constants.ERROR_CORRECT_L: {20, 2, 78, 0, 0},
		constants.ERROR_CORRECT_M: {18, 4, 31, 0, 0},
		constants.ERROR_CORRECT_Q: {18, 2, 14, 4, 15},
		constants.ERROR_CORRECT_H: {26, 4, 13, 1, 14},
	},
	8: {
		constants.ERROR_CORRECT_L: {24, 2, 97, 0, 0},
		constants.ERROR_CORRECT_M: {22, 2, 38, 2, 39},
		constants.ERROR_CORRECT_Q: {22, 4, 18, 2, 19},
		constants.ERROR_CORRECT_H: {26, 4, 14, 2, 15},
	},
	9: {
		constants.ERROR_CORRECT_L: {30, 2, 116, 0, 0},
		constants.ERROR_CORRECT_M: {22, 3, 36, 2, 37},
		constants.ERROR_CORRECT_Q: {20, 4, 16, 4, 17},
		constants.ERROR_CORRECT_H: {24, 4, 12, 4, 13},
	},
	10: {
		constants.ERROR_CORRECT_L: {18, 2, 68, 2, 69},
		constants.ERROR_CORRECT_M: {26, 4, 43, 1, 44},
		constants.ERROR_CORRECT_Q: {24, 6, 19, 2, 20},
		constants.ERROR_CORRECT_H: {28, 6, 15, 2, 16},
	},
	11: {
		constants.ERROR_CORRECT_L: {20, 4, 81, 0, 0},
		constants.ERROR_CORRECT_M: {30, 1, 50, 4, 51},
		constants.ERROR_CORRECT_Q: {28, 4, 22, 4, 23},
		constants.ERROR_CORRECT_H: {24, 3, 12, 8, 13},
	},
	12: {
		constants.ERROR_CORRECT_L: {24, 2, 92, 2, 93},
		constants.ERROR_CORRECT_M: {22, 6, 36, 2, 37},
		constants.ERROR_CORRECT_Q: {26, 4, 20, 6, 21},
		constants.ERROR_CORRECT_H: {28, 7, 14, 4, 15},
	},
	13: {
		constants.ERROR_CORRECT_L: {26, 4, 107, 0, 0},
		constants.ERROR_CORRECT_M: {22, 8, 37, 1, 38},
		constants.ERROR_CORRECT_Q: {24, 8, 20, 4, 21},
		constants.ERROR_CORRECT_H: {22, 12, 11, 4, 12},
	},
	14: {
		constants.ERROR_CORRECT_L: {30, 3, 115, 1, 116},
		constants.ERROR_CORRECT_M: {24, 4, 40, 5, 41},
		constants.ERROR_CORRECT_Q: {20, 11, 16, 5, 17},
		constants.ERROR_CORRECT_H: {24, 11, 12, 5, 13},
	},
	15: {
		constants.ERROR_CORRECT_L: {22, 5, 87, 1, 88},
		constants.ERROR_CORRECT_M: {24, 5, 41, 5, 42},
		constants.ERROR_CORRECT_Q: {30, 5, 24, 7, 25},
		constants.ERROR_CORRECT_H: {24, 11, 12, 7, 13},
	},
	16: {
		constants.ERROR_CORRECT_L: {24, 5, 98, 1, 99},
		constants.ERROR_CORRECT_M: {28, 7, 45, 3, 46},
		constants.ERROR_CORRECT_Q: {24, 15, 19, 2, 20},
		constants.ERROR_CORRECT_H: {30, 3, 15, 13, 16},
	},
	17: {
		constants.ERROR_CORRECT_L: {28, 1, 107, 5, 108},
		constants.ERROR_CORRECT_M: {28, 10, 46, 1, 47},
		constants.ERROR_CORRECT_Q: {28, 1, 22, 15, 23},
		constants.ERROR_CORRECT_H: {28, 2, 14, 17, 15},
	},
	18: {
		constants.ERROR_CORRECT_L: {30, 5, 120, 1, 121},
		constants.ERROR_CORRECT_M: {26, 9, 43, 4, 44},
		constants.ERROR_CORRECT_Q: {28, 17, 22, 1, 23},
		constants.ERROR_CORRECT_H: {28, 2, 14, 19, 15},
	},
	19: {
		constants.ERROR_CORRECT_L: {28, 3, 113, 4, 114},
		constants.ERROR_CORRECT_M: {26, 3, 44, 11, 45},
		constants.ERROR_CORRECT_Q: {26, 17, 21, 4, 22},
		constants.ERROR_CORRECT_H: {26, 9, 13, 16, 14},
	},
	20: {
		constants.ERROR_CORRECT_L: {28, 3, 107, 5, 108},
		constants.ERROR_CORRECT_M: {26, 3, 41, 13, 42},
		constants.ERROR_CORRECT_Q: {30, 15, 24, 5, 25},
		constants.ERROR_CORRECT_H: {28, 15, 15, 10, 16},
	},
	21: {
		constants.ERROR_CORRECT_L: {28, 4, 116, 4, 117},
		constants.ERROR_CORRECT_M: {26, 17, 42, 0, 0},
		constants.ERROR_CORRECT_Q: {28, 17, 22, 6, 23},
		constants.ERROR_CORRECT_H: {30, 19, 16, 6, 17},
	},
	22: {
		constants.ERROR_CORRECT_L: {28, 2, 111, 7, 112},
		constants.ERROR_CORRECT_M: {28, 17, 46, 0, 0},
		constants.ERROR_CORRECT_Q: {30, 7, 24, 16, 25},
		constants.ERROR_CORRECT_H: {24, 34, 13, 0, 0},
	},
	23: {
		constants.ERROR_CORRECT_L: {30, 4, 121, 5, 122},
		constants.ERROR_CORRECT_M: {28, 4, 47, 14, 48},
		constants.ERROR_CORRECT_Q: {30, 11, 24, 14, 25},
		constants.ERROR_CORRECT_H: {30, 16, 15, 14, 16},
	},
	24: {
		constants.ERROR_CORRECT_L: {30, 6, 117, 4, 118},
		constants.ERROR_CORRECT_M: {28, 6, 45, 14, 46},
		constants.ERROR_CORRECT_Q: {30, 11, 24, 16, 25},
		constants.ERROR_CORRECT_H: {30, 30, 16, 2, 17},
	},
	25: {
		constants.ERROR_CORRECT_L: {26, 8, 106, 4, 107},
		constants.ERROR_CORRECT_M: {28, 8, 47, 13, 48},
		constants.ERROR_CORRECT_Q: {30, 7, 24, 22, 25},
		constants.ERROR_CORRECT_H: {30, 22, 15, 13, 16},
	},
	26: {
		constants.ERROR_CORRECT_L: {28, 10, 114, 2, 115},
		constants.ERROR_CORRECT_M: {28, 19, 46, 4, 47},
		constants.ERROR_CORRECT_Q: {28, 28, 22, 6, 23},
		constants.ERROR_CORRECT_H: {30, 33, 16, 4, 17},
	},
	27: {
		constants.ERROR_CORRECT_L: {30, 8, 122, 4, 123},
		constants.ERROR_CORRECT_M: {28, 22, 45, 3, 46},
		constants.ERROR_CORRECT_Q: {30, 8, 23, 26, 24},
		constants.ERROR_CORRECT_H: {30, 12, 15, 28, 16},
	},
	28: {
		constants.ERROR_CORRECT_L: {30, 3, 117, 10, 118},
		constants.ERROR_CORRECT_M: {28, 3, 45, 23, 46},
		constants.ERROR_CORRECT_Q: {30, 4, 24, 31, 25},
		constants.ERROR_CORRECT_H: {30, 11, 15, 31, 16},
	},
	29: {
		constants.ERROR_CORRECT_L: {30, 7, 116, 7, 117},
		constants.ERROR_CORRECT_M: {28, 21, 45, 7, 46},
		constants.ERROR_CORRECT_Q: {30, 1, 23, 37, 24},
		constants.ERROR_CORRECT_H: {30, 19, 15, 26, 16},
	},
	30: {
		constants.ERROR_CORRECT_L: {30, 5, 115, 10, 116},
		constants.ERROR_CORRECT_M: {28, 19, 47, 10, 48},
		constants.ERROR_CORRECT_Q: {30, 15, 24, 25, 25},
		constants.ERROR_CORRECT_H: {30, 23, 15, 25, 16},
	},
	31: {
		constants.ERROR_CORRECT_L: {30, 13, 115, 3, 116},
		constants.ERROR_CORRECT_M: {28, 2, 46, 29, 47},
		constants.ERROR_CORRECT_Q: {30, 42, 24, 1, 25},
		constants.ERROR_CORRECT_H: {30, 23, 15, 28, 16},
	},
	32: {
		constants.ERROR_CORRECT_L: {30, 17, 115, 0, 0},
		constants.ERROR_CORRECT_M: {28, 10, 46, 23, 47},
		constants.ERROR_CORRECT_Q: {30, 10, 24, 35, 25},
		constants.ERROR_CORRECT_H: {30, 19, 15, 35, 16},
	},
	33: {
		constants.ERROR_CORRECT_L: {30, 17, 115, 1, 116},
		constants.ERROR_CORRECT_M: {28, 14, 46, 21, 47},
		constants.ERROR_CORRECT_Q: {30, 29, 24, 19, 25},
		constants.ERROR_CORRECT_H: {30, 11, 15, 46, 16},
	},
	34: {
		constants.ERROR_CORRECT_L: {30, 13, 115, 6, 116},
		constants.ERROR_CORRECT_M: {28, 14, 46, 23, 47},
		constants.ERROR_CORRECT_Q: {30, 44, 24, 7, 25},
		constants.ERROR_CORRECT_H: {30, 59, 16, 1, 17},
	},
	35: {
		constants.ERROR_CORRECT_L: {30, 12, 121, 7, 122},
		constants.ERROR_CORRECT_M: {28, 12, 47, 26, 48},
		constants.ERROR_CORRECT_Q: {30, 39, 24, 14, 25},
		constants.ERROR_CORRECT_H: {30, 22, 15, 41, 16},
	},
	36: {
		constants.ERROR_CORRECT_L: {30, 6, 121, 14, 122},
		constants.ERROR_CORRECT_M: {28, 6, 47, 34, 48},
		constants.ERROR_CORRECT_Q: {30, 46, 24, 10, 25},
		constants.ERROR_CORRECT_H: {30, 2, 15, 64, 16},
	},
	37: {
		constants.ERROR_CORRECT_L: {30, 17, 122, 4, 123},
		constants.ERROR_CORRECT_M: {28, 29, 46, 14, 47},
		constants.ERROR_CORRECT_Q: {30, 49, 24, 10, 25},
		constants.ERROR_CORRECT_H: {30, 24, 15, 46, 16},
	},
	38: {
		constants.ERROR_CORRECT_L: {30, 4, 122, 18, 123},
		constants.ERROR_CORRECT_M: {28, 13, 46, 32, 47},
		constants.ERROR_CORRECT_Q: {30, 48, 24, 14, 25},
		constants.ERROR_CORRECT_H: {30, 42, 15, 32, 16},
	},
	39: {
		constants.ERROR_CORRECT_L: {30, 20, 117, 4, 118},
		constants.ERROR_CORRECT_M: {28, 40, 47, 7, 48},
		constants.ERROR_CORRECT_Q: {30, 43, 24, 22, 25},
		constants.ERROR_CORRECT_H: {30, 10, 15, 67, 16},
	},
	40: {
		constants.ERROR_CORRECT_L: {30, 19, 118, 6, 119},
		constants.ERROR_CORRECT_M: {28, 18, 47, 31, 48},
		constants.ERROR_CORRECT_Q: {30, 34, 24, 34, 25},
		constants.ERROR_CORRECT_H: {30, 20, 15, 61, 16},
	},
}
