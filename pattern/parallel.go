package pattern

import (
	"io"

	"golang.org/x/sync/errgroup"
)

// Split the rows into contiguous, non-overlapping ranges, one per worker. The
// last range picks up the remainder.
func splitRows(rows uint64, workers int) [][2]uint64 {
	if workers < 1 {
		workers = 1
	}
	if uint64(workers) > rows {
		workers = int(rows)
	}
	ranges := make([][2]uint64, 0, workers)
	per := rows / uint64(workers)
	start := uint64(0)
	for i := 0; i < workers; i++ {
		count := per
		if i == workers-1 {
			count = rows - start
		}
		ranges = append(ranges, [2]uint64{start, count})
		start += count
	}
	return ranges
}

// Generate the whole output with several workers, each writing its own row
// range at row * BytesPerRow. The result is byte-identical to Generate.
func GenerateParallel(sink io.WriterAt, mode Mode, geometry Geometry, workers int) (*Result, error) {
	if err := geometry.Validate(mode); err != nil {
		return nil, err
	}
	bpr := geometry.BytesPerRow()
	var group errgroup.Group
	for _, span := range splitRows(geometry.RowCount(), workers) {
		group.Go(func() error {
			pattern := PatternFor(mode, geometry)
			wep := WriteAtErrorPass{w: sink}
			row := make([]byte, bpr)
			pattern.Prepare(row)
			for index := span[0]; index < span[0]+span[1]; index++ {
				pattern.Fill(row, uint32(index))
				wep.WriteAtPass(row, int64(index*bpr))
				if wep.IsPass() != nil {
					break
				}
			}
			return wep.IsPass()
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &Result{
		Rows:    geometry.RowCount(),
		Records: geometry.RecordCount(),
		Length:  geometry.OutputSize(),
	}, nil
}
