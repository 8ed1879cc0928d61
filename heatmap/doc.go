// Package heatmap renders correlation matrices as images and terminal grids.
//
// Write a PNG:
//
//	f, _ := os.Create("heatmap.png")
//	defer f.Close()
//	err := heatmap.RenderPNG(f, m, heatmap.DefaultOptions())
//
// Print to a terminal:
//
//	fmt.Println(heatmap.RenderTerminal(m, heatmap.DefaultOptions()))
//
// Both use the "cool" colour map (cyan for low, magenta for high). NaN cells
// are left blank. Time steps are labelled from 1.
package heatmap
