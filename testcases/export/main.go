// Command export writes the test cases and the test fonts to testdata/,
// so that the same invocations can be run against a reference rasterizer.
// Run from the glyphdump module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/glyphdump/testcases"
)

const outDir = "testdata"

func main() {
	fontDir := filepath.Join(outDir, "fonts")
	if err := os.MkdirAll(fontDir, 0755); err != nil {
		panic(err)
	}

	fontPath := make(map[string]string)
	for _, name := range slices.Sorted(maps.Keys(testcases.Fonts)) {
		p := filepath.Join(fontDir, name+".ttf")
		if err := os.WriteFile(p, testcases.Fonts[name], 0644); err != nil {
			panic(err)
		}
		fontPath[name] = p
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, jsonTestCase{
				Name: category + "_" + tc.Name,
				Font: tc.Font,
				Args: tc.Args(fontPath[tc.Font]),
			})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name string   `json:"name"`
	Font string   `json:"font"`
	Args []string `json:"args"`
}
