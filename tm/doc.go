/*
Package tm implements a linear-bounded Turing machine: a persistent tape, a
deterministic rule table with a derived reverse-transition index, machine
configurations, a forward interpreter and a reverse generator.

Forward execution (Parse) runs the rule table until a terminal state is
reached. Reverse execution (Generate) walks the predecessor relation
backwards from the accept configuration, using the reverse index to find,
in O(1) per candidate, every configuration that could have produced the one
currently being visited. The search is a depth-first walk bounded by a
caller-supplied tape-length limit, streamed lazily so callers can consume a
prefix of what is, for most machines, an infinite language.

License

Governed by a 3-Clause BSD license.

*/
package tm
