// Package stats computes time-step correlation matrices between correlators.
//
// Given two TimeSlices, Correlate compares every time index of the first with
// every time index of the second using the Pearson coefficient.
//
// # Correlation Matrix
//
//	rows, _ := timeslice.Transpose(coll, "2pt_D_nongold_msml5_fine.ll", 16)
//	cols, _ := timeslice.Transpose(coll, "localtempvec_pmax_3pt_T22_msml5_fine.ll", 16)
//
//	m, err := stats.Correlate(rows, cols, stats.DefaultCorrelationOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Format())
//
// Each time index is truncated to CapLength leading samples before comparison,
// so labels with different sample counts can still be paired. A cell is NaN
// when the truncated inputs differ in length, have fewer than two values, or
// one of them is constant. NaN cells are an ordinary outcome, not an error:
//
//	lo, hi := m.Range()        // over computable cells only
//	n := m.Computable()        // number of non-NaN cells
//
// # Pearson Coefficient
//
//	r := stats.Pearson([]float64{1, 2, 3}, []float64{-1, -2, -3}) // -1
package stats
