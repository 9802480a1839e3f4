package main

import (
	"flag"
	"fmt"
	"io"

	"matbm.net/watercolor/imagery/colometry"
)

func runClassify(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	var r colometry.Reflectance
	fs.Float64Var(&r.U, "u", 0, "Ultra blue (coastal aerosol) reflectance")
	fs.Float64Var(&r.R, "r", 0, "Red reflectance")
	fs.Float64Var(&r.G, "g", 0, "Green reflectance")
	fs.Float64Var(&r.B, "b", 0, "Blue reflectance")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := colometry.Classify(r)
	if res.HasWavelength() {
		fmt.Fprintf(out, "Dominant wavelength: %.2f nm\n", res.Wavelength)
	} else {
		fmt.Fprintln(out, "Dominant wavelength: outside calibration table")
	}
	fmt.Fprintf(out, "Purity: %.4f\n", res.Purity)
	fmt.Fprintf(out, "Hue angle: %.2f (corrected %.2f)\n", res.Hue.Alpha, res.Hue.Final)
	return nil
}
