// Package gpl parses labeled correlator dumps into per-label sample collections.
//
// A .gpl file is a whitespace-delimited stream of tokens. A token matching one
// of the caller's known labels starts a new sample; the token right after a
// label is a header (a count) and is always discarded; every following numeric
// token up to the next label belongs to that sample.
//
//	2pt_D_gold_msml5_fine.ll   48
//	1.0 0.81 0.66 ...
//	2pt_D_gold_msml5_fine.ll   48
//	1.0 0.80 0.65 ...
//
// # Parsing
//
// Parse a token slice directly:
//
//	labels := []string{"LBL_A", "LBL_B"}
//	coll := gpl.Parse([]string{"LBL_A", "99", "1.0", "2.0"}, labels)
//
// Or load a whole file:
//
//	coll, err := gpl.LoadFile("2pt-3pt-qsqmax-scalar.gpl", labels)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Inspecting a Collection
//
//	for _, label := range coll.Labels() {
//	    fmt.Printf("%s: %d samples (len %d..%d)\n",
//	        label, coll.Count(label), coll.MinLen(label), coll.MaxLen(label))
//	}
//
// Malformed tokens never fail a parse. They are dropped and counted in
// Stats().Discarded.
package gpl
