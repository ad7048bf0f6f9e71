// Package cpm implements the Critical Path Method forward and backward
// passes over a precedence.Graph: earliest/latest start and
// finish times, total float, criticality, and project makespan.
//
// The four dependency kinds' constraint math is dispatched through one
// kind-indexed table rather than per-variant methods — grounded on the same "single small table, not a
// class hierarchy" discipline lvlath/matrix uses for its operator
// validators. Run never fails on its own; a cycle is caught earlier by
// precedence.TopoSort and never reaches this package.
package cpm
