// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package dimacs reads the DIMACS CNF format and computes the variable
// ordering score the rest of this module consults.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Problem is the result of parsing a DIMACS file: the declared variable and
// clause counts, the variables in first-seen order, their ordering scores,
// and the clause list itself.
type Problem struct {
	NumVars    int
	NumClauses int
	Vars       []int32
	VarScores  map[int32]float64
	Clauses    [][]int32
}

// ParseFile opens path and parses it as DIMACS CNF.
func ParseFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dimacs: opening %q", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads DIMACS CNF text from r. Comment lines ('c') are skipped
// wherever they appear, and the problem line ('p cnf N M') is optional, as
// in the reference scanner this is grounded on. A trailing line containing
// only '%' ends clause scanning, ignoring any trailer after it.
func Parse(r io.Reader) (*Problem, error) {
	var numVars, numClauses int
	var clauses [][]int32
	var clause []int32
	var vars []int32
	seen := map[int32]bool{}
	arities := map[int32][]int{}

	sawProblemLine := false
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, errors.New("dimacs: problem line appears after clauses")
			}
			if sawProblemLine {
				return nil, errors.New("dimacs: multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: malformed problem line %q", line)
			}
			var err error
			numVars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrap(err, "dimacs: malformed #vars")
			}
			numClauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrap(err, "dimacs: malformed #clauses")
			}
			sawProblemLine = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.ParseInt(field, 10, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: invalid literal %q", field)
			}
			lit := int32(n)
			if lit == 0 {
				if len(clause) > 0 {
					recordArities(clause, arities, &vars, seen)
					clauses = append(clauses, clause)
					clause = nil
				}
				continue
			}
			clause = append(clause, lit)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: scanning")
	}
	if len(clause) > 0 {
		recordArities(clause, arities, &vars, seen)
		clauses = append(clauses, clause)
	}

	return &Problem{
		NumVars:    numVars,
		NumClauses: numClauses,
		Vars:       vars,
		VarScores:  calculateScore(arities),
		Clauses:    clauses,
	}, nil
}

func recordArities(clause []int32, arities map[int32][]int, vars *[]int32, seen map[int32]bool) {
	arity := len(clause)
	for _, lit := range clause {
		v := lit
		if v < 0 {
			v = -v
		}
		if !seen[v] {
			seen[v] = true
			*vars = append(*vars, v)
		}
		arities[v] = append(arities[v], arity)
	}
}

// calculateScore assigns each variable the ratio of the number of clauses it
// occurs in to the mean arity of those clauses, matching the heuristic the
// rest of this module ranks variables by.
func calculateScore(arities map[int32][]int) map[int32]float64 {
	scores := make(map[int32]float64, len(arities))
	for v, clauseArities := range arities {
		n := float64(len(clauseArities))
		sum := 0
		for _, a := range clauseArities {
			sum += a
		}
		meanArity := float64(sum) / n
		scores[v] = n / meanArity
	}
	return scores
}
