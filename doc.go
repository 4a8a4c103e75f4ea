// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bddcore implements the BDD half of a portfolio SAT engine: a Reduced
Ordered Binary Decision Diagram (ROBDD) builder that runs alongside an
external CDCL solver on the same CNF formula.

Basics

A Diagram is an append-mostly sequence of decision nodes with indices 0 and 1
reserved for the false and true sinks; only round-up approximation and the
tautology reduction it runs remove nodes. Most operations return a Pointer, an
index into a Diagram's node slice. Unlike a canonical BDD package, structural
sharing is local to a single Apply call, not hash-consed across diagrams: a
portfolio engine builds many short-lived diagrams, one per clause-list
prefix, not one long-lived shared diagram.

Variable ordering is derived once per formula from clause structure (how
often a variable occurs, and how short the clauses it occurs in are) and
stays fixed for the life of a solve.

Construction and approximation

Build walks a clause-derived expression tree bottom up, combining sub-BDDs
with Apply. ParallelBuild drives the whole clause list, interleaving three
things on a schedule: witness-clause export to the CDCL side, the next
sub-BDD's construction, and round-up approximation at a fixed step interval
to cap the diagram's growth. Round-up trades completeness for size:
it may cause the diagram to conclude SAT spuriously, which is why the BDD
side is never authoritative for UNSAT and why the CDCL worker can cancel it
at any time, never the reverse.

Concurrency and cancellation

The BDD builder and the CDCL solver run as two goroutines joined by a
Coordinator. Cancellation runs over three one-shot signals, one each for
the builder, the witness exporter, and the approximator, which each poll
their own signal mid-loop. Cancelling fires all three signals together.
*/
package bddcore
