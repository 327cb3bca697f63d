/*
Command typoscale computes modular typographic scales and renders them as
stylesheets, tables, outlines and HTML previews.

    typoscale css --ratio perfect-fourth --positive 6 --negative 2
    typoscale --config scale.yaml preview --output preview.html
    typoscale steps --fluid --locks

Flags override the values of a configuration file, which in turn override
the defaults.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("typoscale failed", "error", err)
		os.Exit(1)
	}
}
