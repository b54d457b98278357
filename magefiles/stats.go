//go:build mage

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// schemaFile holds the DDL counted by Stats.
const schemaFile = "internal/sqlite/schema.go"

// pkgStats is the line count of one package directory.
type pkgStats struct {
	Dir   string `json:"dir"`
	Prod  int    `json:"prod"`
	Test  int    `json:"test"`
	Files int    `json:"files"`
}

// Stats prints Go lines per package, totals and the number of tables and
// indexes in the schema as one JSON object.
func Stats() error {
	byDir := map[string]*pkgStats{}
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "vendor", "_examples", "magefiles", "testdata", binaryDir:
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		dir := filepath.Dir(path)
		ps, ok := byDir[dir]
		if !ok {
			ps = &pkgStats{Dir: dir}
			byDir[dir] = ps
		}
		n := bytes.Count(data, []byte("\n"))
		if strings.HasSuffix(path, "_test.go") {
			ps.Test += n
		} else {
			ps.Prod += n
		}
		ps.Files++
		return nil
	})
	if err != nil {
		return err
	}

	pkgs := make([]pkgStats, 0, len(byDir))
	var prod, test int
	for _, ps := range byDir {
		pkgs = append(pkgs, *ps)
		prod += ps.Prod
		test += ps.Test
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Dir < pkgs[j].Dir })

	schema, err := os.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", schemaFile, err)
	}

	out, err := json.Marshal(map[string]any{
		"go_loc_prod": prod,
		"go_loc_test": test,
		"go_loc":      prod + test,
		"packages":    pkgs,
		"tables":      bytes.Count(schema, []byte("CREATE TABLE")),
		"indexes":     bytes.Count(schema, []byte("CREATE INDEX")),
	})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
