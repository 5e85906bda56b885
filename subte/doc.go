// Package subte holds the static Subte station directory and the resolver
// that turns free-text station queries (typos, missing accents, wrong-line
// guesses) into a canonical station+line pair with diagnostic messages.
//
// The directory is compiled in and never mutated at runtime; normalized
// lookup keys are precomputed at init.
package subte
