// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command objdump loads an OBJ file (and its companion MTL file) and
// reports vertex, face, shape and material counts. It exists to give
// the core parser a concrete, shell-driven exercise.
package main

import (
	"fmt"
	"os"

	"github.com/g3n/engine/loader/tobj"
	"github.com/g3n/engine/util/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// config is the optional sidecar "objdump.yaml" read alongside the
// command's flags: flags win when both are set.
type config struct {
	Triangulate bool   `yaml:"triangulate"`
	LogLevel    string `yaml:"logLevel"`
}

func loadConfig(path string) config {
	var c config
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c
	}
	return c
}

func main() {
	var (
		mtlPath     string
		triangulate bool
		configPath  string
		verbose     bool
	)

	root := &cobra.Command{
		Use:   "objdump <file.obj>",
		Short: "Report vertex/face/material counts for an OBJ+MTL pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(configPath)
			log := logger.New("objdump", nil)
			log.AddWriter(logger.NewConsole(false))
			if verbose {
				log.SetLevel(logger.DEBUG)
			} else {
				log.SetLevel(logger.WARN)
			}
			if !cmd.Flags().Changed("verbose") && cfg.LogLevel != "" {
				log.SetLevelByName(cfg.LogLevel)
			}
			if cmd.Flags().Changed("triangulate") {
				cfg.Triangulate = triangulate
			}

			opts := tobj.ParseOptions{Logger: log}
			if cfg.Triangulate {
				opts.Flags |= tobj.Triangulate
			}

			attrib, shapes, materials, err := tobj.ParseObjFile(args[0], mtlPath, opts)
			if err != nil {
				return err
			}

			fmt.Printf("vertices:  %d\n", len(attrib.V))
			fmt.Printf("normals:   %d\n", len(attrib.VN))
			fmt.Printf("texcoords: %d\n", len(attrib.VT))
			fmt.Printf("faces:     %d (triangles: %d)\n", len(attrib.F), attrib.TriangleCountTotal)
			fmt.Printf("lines:     %d\n", len(attrib.L))
			fmt.Printf("points:    %d\n", len(attrib.P.VIdx))
			fmt.Printf("materials: %d\n", len(materials.Materials))
			fmt.Printf("shapes:    %d\n", len(shapes))
			for _, s := range shapes {
				fmt.Printf("  %-24s faces [%d, %d)\n", s.Name, s.FaceOffset, s.FaceOffset+s.Length)
			}
			return nil
		},
	}

	root.Flags().StringVar(&mtlPath, "mtl", "", "path to the MTL file (default: the file named by the OBJ's mtllib directive)")
	root.Flags().BoolVar(&triangulate, "triangulate", false, "triangulate faces with more than 3 vertices")
	root.Flags().StringVar(&configPath, "config", "objdump.yaml", "optional sidecar config file")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
