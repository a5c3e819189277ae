package flowcell

// minionLayout holds the MinION (512 channel) physical pore arrangement.
// Index channel-1 gives the {column, row} cell for that channel. The table
// reflects the manufacturer's wiring order and is not derivable from a
// simple row-major formula.
var minionLayout = [...][2]int{
	{31, 0}, {31, 1}, {31, 2}, {31, 3}, {30, 0}, {30, 1}, {30, 2}, {30, 3}, {29, 0}, {29, 1}, {29, 2},
	{29, 3}, {28, 0}, {28, 1}, {28, 2}, {28, 3}, {27, 0}, {27, 1}, {27, 2}, {27, 3}, {26, 0}, {26, 1},
	{26, 2}, {26, 3}, {25, 0}, {25, 1}, {25, 2}, {25, 3}, {24, 0}, {24, 1}, {24, 2}, {24, 3}, {23, 0},
	{23, 1}, {23, 2}, {23, 3}, {22, 0}, {22, 1}, {22, 2}, {22, 3}, {21, 0}, {21, 1}, {21, 2}, {21, 3},
	{20, 0}, {20, 1}, {20, 2}, {20, 3}, {19, 0}, {19, 1}, {19, 2}, {19, 3}, {18, 0}, {18, 1}, {18, 2},
	{18, 3}, {17, 0}, {17, 1}, {17, 2}, {17, 3}, {16, 0}, {16, 1}, {16, 2}, {16, 3}, {15, 0}, {15, 1},
	{15, 2}, {15, 3}, {14, 0}, {14, 1}, {14, 2}, {14, 3}, {13, 0}, {13, 1}, {13, 2}, {13, 3}, {12, 0},
	{12, 1}, {12, 2}, {12, 3}, {11, 0}, {11, 1}, {11, 2}, {11, 3}, {10, 0}, {10, 1}, {10, 2}, {10, 3},
	{9, 0}, {9, 1}, {9, 2}, {9, 3}, {8, 0}, {8, 1}, {8, 2}, {8, 3}, {7, 0}, {7, 1}, {7, 2}, {7, 3},
	{6, 0}, {6, 1}, {6, 2}, {6, 3}, {5, 0}, {5, 1}, {5, 2}, {5, 3}, {4, 0}, {4, 1}, {4, 2}, {4, 3},
	{3, 0}, {3, 1}, {3, 2}, {3, 3}, {2, 0}, {2, 1}, {2, 2}, {2, 3}, {1, 0}, {1, 1}, {1, 2}, {1, 3},
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {31, 4}, {31, 5}, {31, 6}, {31, 7}, {30, 4}, {30, 5}, {30, 6},
	{30, 7}, {29, 4}, {29, 5}, {29, 6}, {29, 7}, {28, 4}, {28, 5}, {28, 6}, {28, 7}, {27, 4}, {27, 5},
	{27, 6}, {27, 7}, {26, 4}, {26, 5}, {26, 6}, {26, 7}, {25, 4}, {25, 5}, {25, 6}, {25, 7}, {24, 4},
	{24, 5}, {24, 6}, {24, 7}, {23, 4}, {23, 5}, {23, 6}, {23, 7}, {22, 4}, {22, 5}, {22, 6}, {22, 7},
	{21, 4}, {21, 5}, {21, 6}, {21, 7}, {20, 4}, {20, 5}, {20, 6}, {20, 7}, {19, 4}, {19, 5}, {19, 6},
	{19, 7}, {18, 4}, {18, 5}, {18, 6}, {18, 7}, {17, 4}, {17, 5}, {17, 6}, {17, 7}, {16, 4}, {16, 5},
	{16, 6}, {16, 7}, {15, 4}, {15, 5}, {15, 6}, {15, 7}, {14, 4}, {14, 5}, {14, 6}, {14, 7}, {13, 4},
	{13, 5}, {13, 6}, {13, 7}, {12, 4}, {12, 5}, {12, 6}, {12, 7}, {11, 4}, {11, 5}, {11, 6}, {11, 7},
	{10, 4}, {10, 5}, {10, 6}, {10, 7}, {9, 4}, {9, 5}, {9, 6}, {9, 7}, {8, 4}, {8, 5}, {8, 6},
	{8, 7}, {7, 4}, {7, 5}, {7, 6}, {7, 7}, {6, 4}, {6, 5}, {6, 6}, {6, 7}, {5, 4}, {5, 5}, {5, 6},
	{5, 7}, {4, 4}, {4, 5}, {4, 6}, {4, 7}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {2, 4}, {2, 5}, {2, 6},
	{2, 7}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {31, 8}, {31, 9},
	{31, 10}, {31, 11}, {30, 8}, {30, 9}, {30, 10}, {30, 11}, {29, 8}, {29, 9}, {29, 10}, {29, 11},
	{28, 8}, {28, 9}, {28, 10}, {28, 11}, {27, 8}, {27, 9}, {27, 10}, {27, 11}, {26, 8}, {26, 9},
	{26, 10}, {26, 11}, {25, 8}, {25, 9}, {25, 10}, {25, 11}, {24, 8}, {24, 9}, {24, 10}, {24, 11},
	{23, 8}, {23, 9}, {23, 10}, {23, 11}, {22, 8}, {22, 9}, {22, 10}, {22, 11}, {21, 8}, {21, 9},
	{21, 10}, {21, 11}, {20, 8}, {20, 9}, {20, 10}, {20, 11}, {19, 8}, {19, 9}, {19, 10}, {19, 11},
	{18, 8}, {18, 9}, {18, 10}, {18, 11}, {17, 8}, {17, 9}, {17, 10}, {17, 11}, {16, 8}, {16, 9},
	{16, 10}, {16, 11}, {15, 8}, {15, 9}, {15, 10}, {15, 11}, {14, 8}, {14, 9}, {14, 10}, {14, 11},
	{13, 8}, {13, 9}, {13, 10}, {13, 11}, {12, 8}, {12, 9}, {12, 10}, {12, 11}, {11, 8}, {11, 9},
	{11, 10}, {11, 11}, {10, 8}, {10, 9}, {10, 10}, {10, 11}, {9, 8}, {9, 9}, {9, 10}, {9, 11},
	{8, 8}, {8, 9}, {8, 10}, {8, 11}, {7, 8}, {7, 9}, {7, 10}, {7, 11}, {6, 8}, {6, 9}, {6, 10},
	{6, 11}, {5, 8}, {5, 9}, {5, 10}, {5, 11}, {4, 8}, {4, 9}, {4, 10}, {4, 11}, {3, 8}, {3, 9},
	{3, 10}, {3, 11}, {2, 8}, {2, 9}, {2, 10}, {2, 11}, {1, 8}, {1, 9}, {1, 10}, {1, 11}, {0, 8},
	{0, 9}, {0, 10}, {0, 11}, {31, 12}, {31, 13}, {31, 14}, {31, 15}, {30, 12}, {30, 13}, {30, 14},
	{30, 15}, {29, 12}, {29, 13}, {29, 14}, {29, 15}, {28, 12}, {28, 13}, {28, 14}, {28, 15},
	{27, 12}, {27, 13}, {27, 14}, {27, 15}, {26, 12}, {26, 13}, {26, 14}, {26, 15}, {25, 12},
	{25, 13}, {25, 14}, {25, 15}, {24, 12}, {24, 13}, {24, 14}, {24, 15}, {23, 12}, {23, 13},
	{23, 14}, {23, 15}, {22, 12}, {22, 13}, {22, 14}, {22, 15}, {21, 12}, {21, 13}, {21, 14},
	{21, 15}, {20, 12}, {20, 13}, {20, 14}, {20, 15}, {19, 12}, {19, 13}, {19, 14}, {19, 15},
	{18, 12}, {18, 13}, {18, 14}, {18, 15}, {17, 12}, {17, 13}, {17, 14}, {17, 15}, {16, 12},
	{16, 13}, {16, 14}, {16, 15}, {15, 12}, {15, 13}, {15, 14}, {15, 15}, {14, 12}, {14, 13},
	{14, 14}, {14, 15}, {13, 12}, {13, 13}, {13, 14}, {13, 15}, {12, 12}, {12, 13}, {12, 14},
	{12, 15}, {11, 12}, {11, 13}, {11, 14}, {11, 15}, {10, 12}, {10, 13}, {10, 14}, {10, 15}, {9, 12},
	{9, 13}, {9, 14}, {9, 15}, {8, 12}, {8, 13}, {8, 14}, {8, 15}, {7, 12}, {7, 13}, {7, 14}, {7, 15},
	{6, 12}, {6, 13}, {6, 14}, {6, 15}, {5, 12}, {5, 13}, {5, 14}, {5, 15}, {4, 12}, {4, 13}, {4, 14},
	{4, 15}, {3, 12}, {3, 13}, {3, 14}, {3, 15}, {2, 12}, {2, 13}, {2, 14}, {2, 15}, {1, 12}, {1, 13},
	{1, 14}, {1, 15}, {0, 12}, {0, 13}, {0, 14}, {0, 15},
}
