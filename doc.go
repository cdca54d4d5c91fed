/*
Package revta implements a linear-bounded Turing machine with two execution
modes over the same rule set: a forward parser that classifies an input tape
as accepted or rejected, and a reverse generator that enumerates the tapes
the machine would accept.

The base package holds the data types shared by every other package: tagged
tape symbols and machine states. Package structure is as follows:

■ tm: Package tm implements the tape, the rule table and its derived reverse
index, configurations, the forward interpreter and the reverse generator.

■ ruledsl: Package ruledsl parses a flat textual transition syntax into
tm.Transition values, so a machine can be built from data instead of only
from Go literals.

License

Governed by a 3-Clause BSD license.

*/
package revta
