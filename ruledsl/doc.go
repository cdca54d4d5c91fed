/*
Package ruledsl parses a flat textual transition syntax into
tm.Transition[string, string, string] values, so machines can be built
from data instead of only from Go literals.

Grammar (one rule per line, blank lines and '#'-comments ignored):

	rule   := state read "->" write move next
	state  := ident
	read   := ident | "⊢" | "⊣"
	write  := ident | "-"   // "-" = no write
	move   := "L" | "R" | "H"
	next   := ident | "-"   // "-" = stay in `state`

"Accept" and "Reject" are reserved `next` idents selecting the
corresponding terminal state; any other ident is wrapped as a non-terminal
user state. For example:

	q0 a -> b R q1
	q0 ⊣ -> - H Accept

License

Governed by a 3-Clause BSD license.

*/
package ruledsl
