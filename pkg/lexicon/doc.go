// Package lexicon maps base word forms to shared WordElement records. A
// lexicon interns one record per base form so repeated lookups return the
// same pointer, which lets synonym lists reference records instead of owning
// copies. Memory is the in-process implementation; Load and LoadFS populate
// it from YAML documents.
package lexicon
