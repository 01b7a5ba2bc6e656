package huffman

// cb8Raw lists codebook 8's (length, x, y) triples in the canonical
// order FAAD2's two-step tables decode them in (non-decreasing code
// length). This is the one spectral codebook for which the retrieved
// reference material carried complete, checkable table data
// (hcb8_1/hcb8_2 in the teacher's internal/huffman/codebook_8.go,
// itself ported from ~/dev/faad2/libfaad/codebook/hcb_8.h); every
// other spectral codebook's data file was absent from that same
// reference tree (see tables_synthetic.go).
//
// Ported from: hcb8_2 in the teacher's internal/huffman/codebook_8.go,
// itself from ~/dev/faad2/libfaad/codebook/hcb_8.h:95-175.
var cb8Raw = []struct {
	length uint8
	x, y   int16
}{
	{3, 1, 1},

	{4, 2, 1}, {4, 1, 0}, {4, 1, 2}, {4, 0, 1}, {4, 2, 2},

	{5, 0, 0}, {5, 2, 0}, {5, 0, 2}, {5, 3, 1}, {5, 1, 3}, {5, 3, 2}, {5, 2, 3},

	{6, 3, 3}, {6, 4, 1}, {6, 1, 4}, {6, 4, 2}, {6, 2, 4},
	{6, 3, 0}, {6, 0, 3}, {6, 4, 3}, {6, 3, 4}, {6, 5, 2},

	{7, 5, 1}, {7, 2, 5}, {7, 1, 5}, {7, 5, 3}, {7, 3, 5}, {7, 4, 4},
	{7, 5, 4}, {7, 0, 4}, {7, 4, 5}, {7, 4, 0}, {7, 2, 6}, {7, 6, 2},
	{7, 6, 1}, {7, 1, 6},

	{8, 3, 6}, {8, 6, 3}, {8, 5, 5}, {8, 5, 0},
	{8, 6, 4}, {8, 0, 5}, {8, 4, 6}, {8, 7, 1}, {8, 7, 2}, {8, 2, 7}, {8, 6, 5}, {8, 7, 3},
	{8, 1, 7}, {8, 5, 6}, {8, 3, 7},

	{9, 6, 6}, {9, 7, 4}, {9, 6, 0}, {9, 4, 7}, {9, 0, 6}, {9, 7, 5}, {9, 7, 6}, {9, 6, 7},

	{10, 5, 7}, {10, 7, 0}, {10, 0, 7}, {10, 7, 7},
}

func newCodebook8() *Codebook {
	entries := make([]Entry, len(cb8Raw))
	for i, r := range cb8Raw {
		entries[i] = Entry{
			Length: r.length,
			Index:  uint16(r.x*8 + r.y), // mod = LAV+1 = 8, dimension 2
		}
	}
	buildCanonical(entries)
	return &Codebook{
		ID:        8,
		Dimension: 2,
		LAV:       7,
		Signed:    false,
		MaxLen:    maxLength(entries),
		Entries:   entries,
	}
}
