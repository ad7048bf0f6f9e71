// Package resource implements the serial-schedule-generation resolver: it
// post-processes a cpm.Result so that no renewable-resource
// (Equipment, People) capacity is ever exceeded at any instant and no
// consumable-resource total is exceeded, while warning when feasibility
// forced a step past its CPM slack or a consumable override fell below
// total demand.
//
// The renewable-resource profile is a list of (start, end, quantity)
// allocations, kept in placement order and scanned at allocation
// boundaries to answer "is there room for this step's quantity over
// [t, t+dur)?".
package resource
