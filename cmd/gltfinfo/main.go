// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gltfinfo inspects a glTF or GLB asset: it parses the document, optionally
// loads its buffers and runs the validator, and prints the asset metadata
// and per-array summaries as tables or as YAML.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"

	"github.com/vilya/gltf"
	"github.com/vilya/gltf/util/logger"
)

var Version = "v0.1.0"

var (
	asYAML      bool
	runValidate bool
	loadBuffers bool
	verbose     bool
)

func main() {

	name := filepath.Base(os.Args[0])
	app := &cli.App{
		Name:      name,
		Usage:     "Inspect a glTF 2.0 asset (.gltf or .glb).",
		UsageText: name + " [options] FILE",
		Version:   Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Destination: &asYAML,
				Name:        "yaml",
				Usage:       "Print a machine readable YAML summary instead of tables.",
			},
			&cli.BoolFlag{
				Destination: &runValidate,
				Name:        "validate",
				Usage:       "Run the validator and report the verdict.",
			},
			&cli.BoolFlag{
				Destination: &loadBuffers,
				Name:        "load-buffers",
				Aliases:     []string{"b"},
				Usage:       "Load external and embedded buffers before reporting.",
			},
			&cli.BoolFlag{
				Destination: &verbose,
				Name:        "verbose",
				Usage:       "Enable debug logging.",
			},
		},
		Action: run,
		Writer: os.Stdout,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {

	if c.NArg() != 1 {
		return cli.ShowAppHelp(c)
	}
	if verbose {
		logger.SetLevel(logger.DEBUG)
	}
	path := c.Args().First()

	doc, err := gltf.ParseFile(&gltf.Options{}, path)
	if err != nil {
		return err
	}
	if loadBuffers {
		if err := doc.LoadBuffers(path); err != nil {
			return err
		}
	}

	var verdict string
	if runValidate {
		if err := doc.Validate(); err != nil {
			verdict = err.Error()
		} else {
			verdict = "ok"
		}
	}

	if asYAML {
		return printYAML(doc, verdict)
	}
	printTables(doc, verdict)
	return nil
}

// summary is the YAML projection of a parsed document.
type summary struct {
	File       string         `yaml:"file"`
	Version    string         `yaml:"version"`
	Generator  string         `yaml:"generator,omitempty"`
	Copyright  string         `yaml:"copyright,omitempty"`
	Counts     map[string]int `yaml:"counts"`
	Extensions struct {
		Used     []string `yaml:"used,omitempty"`
		Required []string `yaml:"required,omitempty"`
	} `yaml:"extensions,omitempty"`
	BINSize  int    `yaml:"binSize,omitempty"`
	Validate string `yaml:"validate,omitempty"`
}

func fileTypeName(t gltf.FileType) string {

	if t == gltf.FileTypeGLB {
		return "binary"
	}
	return "text"
}

func counts(doc *gltf.Document) map[string]int {

	return map[string]int{
		"buffers":     len(doc.Buffers),
		"bufferViews": len(doc.BufferViews),
		"accessors":   len(doc.Accessors),
		"images":      len(doc.Images),
		"samplers":    len(doc.Samplers),
		"textures":    len(doc.Textures),
		"materials":   len(doc.Materials),
		"meshes":      len(doc.Meshes),
		"skins":       len(doc.Skins),
		"cameras":     len(doc.Cameras),
		"lights":      len(doc.Lights),
		"nodes":       len(doc.Nodes),
		"scenes":      len(doc.Scenes),
		"animations":  len(doc.Animations),
	}
}

func printYAML(doc *gltf.Document, verdict string) error {

	var s summary
	s.File = fileTypeName(doc.FileType)
	s.Version = doc.Asset.Version
	s.Generator = doc.Asset.Generator
	s.Copyright = doc.Asset.Copyright
	s.Counts = counts(doc)
	s.Extensions.Used = doc.ExtensionsUsed
	s.Extensions.Required = doc.ExtensionsRequired
	s.BINSize = len(doc.BIN)
	s.Validate = verdict

	out, err := yaml.Marshal(&s)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func printTables(doc *gltf.Document, verdict string) {

	fmt.Printf("asset: glTF %s (%s form)", doc.Asset.Version, fileTypeName(doc.FileType))
	if doc.Asset.Generator != "" {
		fmt.Printf(", generated by %s", doc.Asset.Generator)
	}
	fmt.Println()
	if len(doc.BIN) > 0 {
		fmt.Printf("bin: %d bytes\n", len(doc.BIN))
	}
	if verdict != "" {
		fmt.Printf("validate: %s\n", verdict)
	}

	tb := tablewriter.NewWriter(os.Stdout)
	tb.SetHeader([]string{"Array", "Count"})
	for _, row := range [][2]string{
		{"buffers", strconv.Itoa(len(doc.Buffers))},
		{"bufferViews", strconv.Itoa(len(doc.BufferViews))},
		{"accessors", strconv.Itoa(len(doc.Accessors))},
		{"images", strconv.Itoa(len(doc.Images))},
		{"samplers", strconv.Itoa(len(doc.Samplers))},
		{"textures", strconv.Itoa(len(doc.Textures))},
		{"materials", strconv.Itoa(len(doc.Materials))},
		{"meshes", strconv.Itoa(len(doc.Meshes))},
		{"skins", strconv.Itoa(len(doc.Skins))},
		{"cameras", strconv.Itoa(len(doc.Cameras))},
		{"lights", strconv.Itoa(len(doc.Lights))},
		{"nodes", strconv.Itoa(len(doc.Nodes))},
		{"scenes", strconv.Itoa(len(doc.Scenes))},
		{"animations", strconv.Itoa(len(doc.Animations))},
	} {
		tb.Append(row[:])
	}
	tb.Render()

	if len(doc.Meshes) > 0 {
		tb = tablewriter.NewWriter(os.Stdout)
		tb.SetHeader([]string{"Mesh", "Name", "Primitives", "Morph Targets"})
		for i := range doc.Meshes {
			m := &doc.Meshes[i]
			targets := 0
			if len(m.Primitives) > 0 {
				targets = len(m.Primitives[0].Targets)
			}
			tb.Append([]string{
				strconv.Itoa(i), m.Name,
				strconv.Itoa(len(m.Primitives)), strconv.Itoa(targets),
			})
		}
		tb.Render()
	}

	if len(doc.Nodes) > 0 {
		tb = tablewriter.NewWriter(os.Stdout)
		tb.SetHeader([]string{"Node", "Name", "Parent", "Children", "Refs"})
		for i := range doc.Nodes {
			n := &doc.Nodes[i]
			parent := "-"
			if p, ok := doc.NodeParent(i); ok {
				parent = strconv.Itoa(p)
			}
			refs := ""
			if n.Mesh != nil {
				refs += "mesh:" + strconv.Itoa(*n.Mesh) + " "
			}
			if n.Skin != nil {
				refs += "skin:" + strconv.Itoa(*n.Skin) + " "
			}
			if n.Camera != nil {
				refs += "camera:" + strconv.Itoa(*n.Camera) + " "
			}
			if n.Light != nil {
				refs += "light:" + strconv.Itoa(*n.Light)
			}
			tb.Append([]string{
				strconv.Itoa(i), n.Name, parent,
				strconv.Itoa(len(n.Children)), refs,
			})
		}
		tb.Render()
	}
}
