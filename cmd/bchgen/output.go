package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akalin/bchgen/gf2"
	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgYellow, color.Bold)
	polyColor   = color.New(color.FgGreen, color.Bold)
	okColor     = color.New(color.FgGreen)
)

type polyJSON struct {
	Hex       string `json:"hex"`
	Algebraic string `json:"algebraic"`
	Degree    int    `json:"degree"`
}

func toPolyJSON(p gf2.Poly) polyJSON {
	return polyJSON{
		Hex:       fmt.Sprintf("%#x", p.Big()),
		Algebraic: p.String(),
		Degree:    p.Degree(),
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writePoly writes p in algebraic form followed by its hex form.
func writePoly(w io.Writer, p gf2.Poly) {
	polyColor.Fprint(w, p.String())
	fmt.Fprintf(w, " (%#x)\n", p.Big())
}

func formatSet(members []int) string {
	strs := make([]string, len(members))
	for i, m := range members {
		strs[i] = strconv.Itoa(m)
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
