// Command tokswap reads a problem description (architecture edges plus an
// initial and desired logical-to-physical qubit placement) as JSON and
// prints the swap sequence that realises the placement.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/tokswap/solver"
)

// problem is the on-disk/stdin shape: Nodes names every physical node,
// Edges lists undirected adjacency by node name, and the two maps place
// logical qubits onto nodes before and after the desired swap sequence.
type problem struct {
	Nodes   []string          `json:"nodes"`
	Edges   [][2]string       `json:"edges"`
	Initial map[string]string `json:"initial"`
	Desired map[string]string `json:"desired"`
	Seed    int64             `json:"seed"`
}

func main() {
	inputPath := flag.String("input", "", "path to a problem JSON file (default: stdin)")
	flag.Parse()

	p, err := readProblem(*inputPath)
	if err != nil {
		log.Fatalf("tokswap: reading problem: %v", err)
	}

	opts := solver.DefaultOptions()
	if p.Seed != 0 {
		opts.Seed = p.Seed
	}

	swaps, err := solver.SolveOnArchitecture(p.Nodes, p.Edges, p.Initial, p.Desired, opts)
	if err != nil {
		log.Fatalf("tokswap: solve failed: %v", err)
	}

	log.Printf("tokswap: %d swap(s) realise the requested placement", len(swaps))
	if err := json.NewEncoder(os.Stdout).Encode(swaps); err != nil {
		log.Fatalf("tokswap: encoding result: %v", err)
	}
}

func readProblem(path string) (problem, error) {
	var r *os.File
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return problem{}, err
		}
		defer f.Close()
		r = f
	}

	var p problem
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return problem{}, err
	}

	return p, nil
}
