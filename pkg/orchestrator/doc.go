// Package orchestrator wires synonym resolution → syntax → morphology →
// orthography → formatter into a single realiser, providing dependency
// injection friendly options for callers that replace individual stages.
package orchestrator
