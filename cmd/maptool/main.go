package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/voxelmaps/mapgen/utils"
)

func usage() {
	fmt.Println("Usage: maptool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  nodes <output.npy>                     (generate the node permutation table)")
	fmt.Println("  nodes-zst <output.npy.zst>             (same, zstd compressed)")
	fmt.Println("  world <nodes.npy> <seed> <output.npy>  (assemble a random 12x12x9 world)")
	fmt.Println("  world2glb <world.npy> <output.glb>     (convert an assembled world to .glb)")
	fmt.Println("  info <file>                            (print shape and fill of a stored array)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "nodes":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunGenerateNodes(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "nodes-zst":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunGenerateNodesZstd(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "world":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		seed, err := strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if err := utils.RunGenerateWorld(os.Args[2], seed, os.Args[4]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "world2glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunWorld2GLB(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "info":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunInfo(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}
